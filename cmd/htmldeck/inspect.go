package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/tsawler/htmldeck"
	"github.com/tsawler/htmldeck/format"
	"github.com/tsawler/htmldeck/model"
	"github.com/tsawler/htmldeck/pptx"
)

// maxTitleWidth caps the title column, in terminal cells.
const maxTitleWidth = 40

// inspect prints a summary of the slides in input. A .pptx input is
// printed as Markdown instead.
func inspect(w io.Writer, input string) error {
	if format.Detect(input) == format.PPTX {
		r, err := pptx.Open(input)
		if err != nil {
			return fmt.Errorf("%w: %w", htmldeck.ErrInput, err)
		}
		defer r.Close()

		md, err := r.Markdown()
		if err != nil {
			return fmt.Errorf("%w: %w", htmldeck.ErrInput, err)
		}
		_, err = io.WriteString(w, md)
		return err
	}

	slides, err := htmldeck.Open(input).Slides()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, slideTable(slides))
	return err
}

var slideColumns = []string{"#", "Title", "Stats", "Bullets", "Tables", "Cards", "Bars", "Charts", "Boxes", "Text"}

// slideTable renders one row per slide with its block counts.
func slideTable(slides []model.SlideRecord) string {
	rows := make([][]string, 0, len(slides)+1)
	rows = append(rows, slideColumns)
	for i, s := range slides {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			runewidth.Truncate(s.Title, maxTitleWidth, "…"),
			strconv.Itoa(len(s.Stats)),
			strconv.Itoa(len(s.BulletPoints)),
			strconv.Itoa(len(s.Tables)),
			strconv.Itoa(len(s.AlgorithmCards)),
			strconv.Itoa(len(s.FeatureBars)),
			strconv.Itoa(len(s.ChartPlaceholders)),
			strconv.Itoa(len(s.HighlightBoxes)),
			strconv.Itoa(len(s.Paragraphs)),
		})
	}

	widths := make([]int, len(slideColumns))
	for _, row := range rows {
		for j, cell := range row {
			widths[j] = max(widths[j], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	border := borderLine(widths)
	sb.WriteString(border)
	for i, row := range rows {
		sb.WriteString("|")
		for j, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(runewidth.FillRight(cell, widths[j]))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
		if i == 0 {
			sb.WriteString(border)
		}
	}
	sb.WriteString(border)
	return sb.String()
}

func borderLine(widths []int) string {
	var sb strings.Builder
	sb.WriteString("+")
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
	return sb.String()
}
