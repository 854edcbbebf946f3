package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vango-dev/tooltips/internal/errors"
	"github.com/vango-dev/tooltips/pkg/dom"
	"github.com/vango-dev/tooltips/pkg/position"
)

func positionCmd() *cobra.Command {
	var (
		target    string
		size      string
		placement string
		offset    float64
		viewport  string
		scroll    string
	)

	cmd := &cobra.Command{
		Use:   "position",
		Short: "Compute where a tooltip would be placed",
		Long: `Run the positioning engine on a target rectangle and tooltip size.

Rectangles are given in viewport pixels. The result is in page
pixels, after the viewport clamp and the scroll offset.

Examples:
  tooltips position --target 100,100,50,20 --size 80,30
  tooltips position --target 0,100,50,20 --size 80,30 --placement left`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := positionInput(target, size, placement, offset, viewport, scroll)
			if err != nil {
				return err
			}
			p := position.Compute(in)
			fmt.Fprintf(cmd.OutOrStdout(), "top=%s left=%s\n", position.Px(p.Top), position.Px(p.Left))
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Target rectangle as left,top,width,height")
	cmd.Flags().StringVar(&size, "size", "", "Tooltip size as width,height")
	cmd.Flags().StringVarP(&placement, "placement", "p", string(position.Top), "top, bottom, left or right")
	cmd.Flags().Float64Var(&offset, "offset", 10, "Gap between target and tooltip")
	cmd.Flags().StringVar(&viewport, "viewport", "1000,800", "Viewport size as width,height")
	cmd.Flags().StringVar(&scroll, "scroll", "0,0", "Scroll offset as x,y")
	cmd.MarkFlagRequired("target")
	cmd.MarkFlagRequired("size")
	return cmd
}

func positionInput(target, size, placement string, offset float64, viewport, scroll string) (position.Input, error) {
	var in position.Input

	t, err := numbers("target", target, 4)
	if err != nil {
		return in, err
	}
	s, err := numbers("size", size, 2)
	if err != nil {
		return in, err
	}
	v, err := numbers("viewport", viewport, 2)
	if err != nil {
		return in, err
	}
	sc, err := numbers("scroll", scroll, 2)
	if err != nil {
		return in, err
	}
	p := position.Placement(placement)
	if !p.Valid() {
		return in, errors.Newf(errors.CategoryCLI, "placement %q is not one of top, bottom, left, right", placement)
	}

	in = position.Input{
		Target:    dom.Rect{Left: t[0], Top: t[1], Width: t[2], Height: t[3]},
		Tooltip:   position.Size{Width: s[0], Height: s[1]},
		Placement: p,
		Offset:    offset,
		Viewport:  dom.Viewport{Width: v[0], Height: v[1], ScrollX: sc[0], ScrollY: sc[1]},
	}
	return in, nil
}

// numbers parses a comma separated list of exactly n numbers.
func numbers(flag, value string, n int) ([]float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) != n {
		return nil, errors.Newf(errors.CategoryCLI, "--%s needs %d comma separated numbers, got %q", flag, n, value)
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Newf(errors.CategoryCLI, "--%s: %q is not a number", flag, p)
		}
		out[i] = f
	}
	return out, nil
}
