package main

import (
	"fmt"

	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/urfave/cli/v2"
)

func setupCmd(c *cli.Context) error {
	custom := config.Default()
	if file := c.String("config"); file != "" {
		conf, err := config.Initialize(file)
		if err != nil {
			return err
		}
		custom = conf
	}
	if c.IsSet("log") {
		custom.Log.Level = c.Int("log")
	}
	if c.IsSet("filter") {
		custom.Log.Filter = c.String("filter")
	}

	logger.SetLevel(custom.Log.Level)
	logger.SetLimiter(custom.Log.Limiter)
	err := logger.SetFilter(custom.Log.Filter)
	if err != nil {
		return err
	}
	c.App.Metadata["config"] = custom
	return nil
}

func customFromContext(c *cli.Context) *config.Custom {
	if custom, ok := c.App.Metadata["config"].(*config.Custom); ok {
		return custom
	}
	return config.Default()
}

func fractionFromContext(c *cli.Context, num, den string) (common.Fraction, error) {
	f, err := common.NewFraction(c.Int64(num), c.Int64(den))
	if err != nil {
		return common.Fraction{}, fmt.Errorf("--%s --%s: %w", num, den, err)
	}
	logger.Debugf("fraction %s from --%s %d --%s %d", f, num, c.Int64(num), den, c.Int64(den))
	return f, nil
}

func showCmd(c *cli.Context) error {
	custom := customFromContext(c)
	f, err := fractionFromContext(c, "num", "den")
	if err != nil {
		return err
	}
	precision := custom.Output.Precision
	if c.IsSet("precision") {
		precision = c.Int("precision")
	}
	err = config.ValidatePrecision(precision)
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "fraction:\t%s\n", f)
	fmt.Fprintf(out, "numerator:\t%d\n", f.Numerator())
	fmt.Fprintf(out, "denominator:\t%d\n", f.Denominator())
	fmt.Fprintf(out, "decimal:\t%s\n", f.StringFixed(int32(precision)))
	if custom.Output.Float || c.Bool("float") {
		fmt.Fprintf(out, "float:\t%v\n", f.Float64())
	}
	if custom.Output.Mixed || c.Bool("mixed") {
		m, err := f.MixedNumber()
		if err != nil {
			logger.Errorf("show %s: %v", f, err)
			return err
		}
		fmt.Fprintf(out, "mixed:\t%s\n", m)
	}
	fmt.Fprintf(out, "zero:\t%t\n", f.IsZero())
	fmt.Fprintf(out, "integer:\t%t\n", f.IsInteger())
	fmt.Fprintf(out, "proper:\t%t\n", f.IsProper())
	fmt.Fprintf(out, "unit:\t%t\n", f.IsUnit())
	return nil
}

func powCmd(c *cli.Context) error {
	f, err := fractionFromContext(c, "num", "den")
	if err != nil {
		return err
	}
	return operate(c, common.OperatorPow, f, c.Int("exp"))
}

func binaryCmd(op common.Operator) cli.ActionFunc {
	return func(c *cli.Context) error {
		x, err := fractionFromContext(c, "num", "den")
		if err != nil {
			return err
		}
		y, err := fractionFromContext(c, "other-num", "other-den")
		if err != nil {
			return err
		}
		return operate(c, op, x, y)
	}
}

func operate(c *cli.Context, op common.Operator, x common.Fraction, y interface{}) error {
	v, err := common.Operate(op, x, y)
	if err != nil {
		logger.Errorf("%s %s %v: %v", op, x, y, err)
		return err
	}
	logger.Verbosef("%s %s %v => %v", op, x, y, v)
	fmt.Fprintln(c.App.Writer, v)
	return nil
}
