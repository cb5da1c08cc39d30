package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"                 _   _   _  __ _", "#818cf8"},
	{" _ __  _ __ ___| |_| |_(_)/ _(_) ___ _ __", "#a78bfa"},
	{"| '_ \\| '__/ _ \\ __| __| | |_| |/ _ \\ '__|", "#c084fc"},
	{"| |_) | | |  __/ |_| |_| |  _| |  __/ |", "#e879f9"},
	{"| .__/|_|  \\___|\\__|\\__|_|_| |_|\\___|_|", "#f472b6"},
	{"|_|", "#fb7185"},
}

// PrintBanner writes the prettifier banner to w, colored when w is a color terminal.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, out.String(line.text).Foreground(out.Color(line.color)))
	}
	fmt.Fprintln(w)
}
