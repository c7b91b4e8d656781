package command

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/govalues/annuity"
	"github.com/govalues/annuity/internal/log"
	"github.com/urfave/cli"
)

var (
	verboseFlag = cli.BoolFlag{Name: "verbose", Usage: "log every evaluation", EnvVar: "ANNUITY_VERBOSE"}

	rateFlag = cli.Float64Flag{Name: "rate", Usage: "interest rate per period, 0.01 is 1%", Required: true}
	perFlag  = cli.IntFlag{Name: "per", Usage: "period, from 1 to nper", Required: true}
	nperFlag = cli.IntFlag{Name: "nper", Usage: "number of periods", Required: true}
	pvFlag   = cli.Float64Flag{Name: "pv", Usage: "present value", Required: true}
	fvFlag   = cli.Float64Flag{Name: "fv", Usage: "future value after the last payment"}
	pmtFlag  = cli.Float64Flag{Name: "pmt", Usage: "payment per period", Required: true}
	whenFlag = cli.StringFlag{Name: "when", Value: "end", Usage: "payments due at the `end` or at the begin of each period"}
	currFlag = cli.StringFlag{Name: "curr", Usage: "round the result to the scale of the currency `CODE`", EnvVar: "ANNUITY_CURR"}
)

type runner struct {
	stdout io.Writer
	stderr io.Writer
	level  slog.Level
}

func (r *runner) logger(component string) *slog.Logger {
	return log.New(log.Config{Level: r.level, Component: component, Writer: r.stderr})
}

// New returns the annuity command line application.
// Results are written to stdout, logs to stderr.
func New(stdout, stderr io.Writer) *cli.App {
	r := &runner{
		stdout: stdout,
		stderr: stderr,
		level:  slog.LevelInfo,
	}

	app := cli.NewApp()
	app.Name = "annuity"
	app.Usage = "evaluate annuity formulas"
	app.HideVersion = true
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{verboseFlag}
	app.Before = func(cctx *cli.Context) error {
		r.level = log.Level(cctx.Bool(verboseFlag.Name))
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:   FuncPMT,
			Usage:  "periodic payment",
			Flags:  []cli.Flag{rateFlag, nperFlag, pvFlag, fvFlag, whenFlag, currFlag},
			Action: r.formula(FuncPMT),
		},
		{
			Name:   FuncFV,
			Usage:  "future value",
			Flags:  []cli.Flag{rateFlag, nperFlag, pmtFlag, pvFlag, whenFlag, currFlag},
			Action: r.formula(FuncFV),
		},
		{
			Name:   FuncIPMT,
			Usage:  "interest portion of the payment in a period",
			Flags:  []cli.Flag{rateFlag, perFlag, nperFlag, pvFlag, fvFlag, whenFlag, currFlag},
			Action: r.formula(FuncIPMT),
		},
		{
			Name:   FuncPPMT,
			Usage:  "principal portion of the payment in a period",
			Flags:  []cli.Flag{rateFlag, perFlag, nperFlag, pvFlag, fvFlag, whenFlag, currFlag},
			Action: r.formula(FuncPPMT),
		},
		{
			Name:      "batch",
			Usage:     "evaluate the calculations listed in a YAML or TOML file",
			ArgsUsage: "FILE",
			Action:    r.batch,
		},
	}
	return app
}

// formula returns the action evaluating a single formula from the command line flags.
func (r *runner) formula(name string) func(*cli.Context) error {
	return func(cctx *cli.Context) error {
		when, err := annuity.ParseTiming(cctx.String(whenFlag.Name))
		if err != nil {
			return err
		}
		c := Calculation{
			Name: name,
			Func: name,
			Rate: cctx.Float64(rateFlag.Name),
			Per:  cctx.Int(perFlag.Name),
			Nper: cctx.Int(nperFlag.Name),
			PV:   cctx.Float64(pvFlag.Name),
			FV:   cctx.Float64(fvFlag.Name),
			PMT:  cctx.Float64(pmtFlag.Name),
			When: when,
			Curr: cctx.String(currFlag.Name),
		}
		res, err := r.eval(r.logger(log.ComponentCLI), c)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.stdout, res)
		return err
	}
}

func (r *runner) batch(cctx *cli.Context) error {
	if cctx.NArg() != 1 {
		return fmt.Errorf("batch expects exactly one file, got %d", cctx.NArg())
	}
	path := cctx.Args().First()
	logger := r.logger(log.ComponentBatch).With(log.FieldFile, path)

	b, err := LoadBatch(path)
	if err != nil {
		return err
	}
	logger.Debug("batch loaded", log.FieldCount, len(b.Calculations))

	for i, c := range b.Calculations {
		if c.Name == "" {
			c.Name = "#" + strconv.Itoa(i+1)
		}
		res, err := r.eval(logger, c)
		if err != nil {
			return fmt.Errorf("calculation %v: %w", c.Name, err)
		}
		if _, err := fmt.Fprintf(r.stdout, "%s\t%s\t%s\n", c.Name, c.Func, res); err != nil {
			return err
		}
	}
	return nil
}

// eval evaluates a calculation and logs the outcome.
func (r *runner) eval(logger *slog.Logger, c Calculation) (string, error) {
	logger = logger.With(log.FieldName, c.Name, log.FieldFunc, c.Func)
	res, finite, err := c.Eval()
	if err != nil {
		logger.Debug("evaluation failed", log.FieldError, err)
		return "", err
	}
	if !finite {
		logger.Warn("result is not a finite number", log.FieldResult, res)
	}
	logger.Debug("evaluated", log.FieldResult, res)
	return res, nil
}
