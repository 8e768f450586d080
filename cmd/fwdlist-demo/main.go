package main

import (
	"github.com/alecthomas/kong"
	"github.com/sirkon/errors"
	"github.com/sirkon/fwdlist/internal/demo"
	"github.com/sirkon/message"
)

type cliArgs struct {
	Sample int      `short:"s" default:"0" help:"Position of the element used as a removal sample."`
	Items  []string `arg:"" optional:"" help:"Items in id:name form, the built-in set is used when omitted."`
}

func main() {
	var args cliArgs
	kong.Parse(
		&args,
		kong.Name("fwdlist-demo"),
		kong.Description("Fills a forward list with items and removes every item equal to the sample."),
		kong.UsageOnError(),
	)

	opts := []demo.Option{
		demo.WithSamplePosition(args.Sample),
	}
	if len(args.Items) > 0 {
		items, err := demo.ParseItems(args.Items)
		if err != nil {
			message.Critical(errors.Wrap(err, "parse command line items"))
		}

		opts = append(opts, demo.WithItems(items...))
	}

	demo.New(printer{}, opts...).Run()
}
