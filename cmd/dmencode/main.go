// Command dmencode prints the Data Matrix data codewords for each argument.
package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/google/renameio"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ericlevine/dmencode"
	"github.com/ericlevine/dmencode/datamatrix/encoder"
)

var (
	shape        string
	minSize      string
	maxSize      string
	charsetName  string
	forceEDIFACT bool
	dataOnly     bool
	output       string
	logLevel     string
)

func init() {
	RootCmd.Flags().StringVar(&shape, "shape", "any", "symbol shape: any, square or rectangle")
	RootCmd.Flags().StringVar(&minSize, "min-size", "", "smallest allowed symbol, as WxH")
	RootCmd.Flags().StringVar(&maxSize, "max-size", "", "largest allowed symbol, as WxH")
	RootCmd.Flags().StringVar(&charsetName, "charset", "", "character set of the encoded bytes (default ISO-8859-1)")
	RootCmd.Flags().BoolVar(&forceEDIFACT, "force-edifact", false, "use EDIFACT for every run of EDIFACT characters")
	RootCmd.Flags().BoolVar(&dataOnly, "data-only", false, "omit pad codewords")
	RootCmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	RootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// RootCmd is the main command for the 'dmencode' binary.
var RootCmd = &cobra.Command{
	Use:   "dmencode [flags] <text> [text...]",
	Short: "`dmencode` prints Data Matrix data codewords",
	Long: "`dmencode` encodes each argument into Data Matrix (ECC-200) data codewords\n" +
		"and prints the chosen symbol size followed by the codewords in hex.",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.Out = os.Stderr
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	opts, err := encodeOptions()
	if err != nil {
		return err
	}
	opts.Logger = log

	results := make([]*dmencode.Result, len(args))
	var g errgroup.Group
	for i, text := range args {
		i, text := i, text
		g.Go(func() error {
			res, err := dmencode.Encode(text, opts)
			if err != nil {
				return fmt.Errorf("%q: %w", text, err)
			}
			log.WithFields(logrus.Fields{
				"symbol":    res.Symbol,
				"codewords": res.DataLength,
			}).Debugf("encoded %q", text)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var buf bytes.Buffer
	for i, res := range results {
		cws := res.Codewords
		if dataOnly {
			cws = cws[:res.DataLength]
		}
		if len(args) > 1 {
			fmt.Fprintf(&buf, "%s: ", args[i])
		}
		fmt.Fprintf(&buf, "%s\t% X\n", res.Symbol, cws)
	}

	if output != "" {
		return renameio.WriteFile(output, buf.Bytes(), 0644)
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}

func encodeOptions() (*dmencode.EncodeOptions, error) {
	opts := &dmencode.EncodeOptions{
		CharacterSet: charsetName,
		ForceEDIFACT: forceEDIFACT,
	}
	switch strings.ToLower(shape) {
	case "any", "":
		opts.Shape = encoder.ShapeHintForceNone
	case "square":
		opts.Shape = encoder.ShapeHintForceSquare
	case "rectangle":
		opts.Shape = encoder.ShapeHintForceRectangle
	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}

	var err error
	if opts.MinSize, err = parseDimension(minSize); err != nil {
		return nil, err
	}
	if opts.MaxSize, err = parseDimension(maxSize); err != nil {
		return nil, err
	}
	return opts, nil
}

// parseDimension parses "WxH". An empty string means no constraint.
func parseDimension(s string) (*encoder.Dimension, error) {
	if s == "" {
		return nil, nil
	}
	var d encoder.Dimension
	if _, err := fmt.Sscanf(s, "%dx%d", &d.Width, &d.Height); err != nil {
		return nil, fmt.Errorf("invalid size %q: %v", s, err)
	}
	if d.Width < 1 || d.Height < 1 {
		return nil, fmt.Errorf("invalid size %q", s)
	}
	return &d, nil
}
