// Package sheet localizes spreadsheet exports of notes for Persian readers:
// right-to-left cells are right aligned, digits can be shown in Farsi and
// mostly right-to-left sheets are flipped.
package sheet

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mroshb/notefmt/pkg/errors"
	"github.com/mroshb/notefmt/pkg/logger"
	"github.com/mroshb/notefmt/pkg/utils"
)

// readingOrderRTL is the OOXML reading order value for right-to-left text.
const readingOrderRTL = 2

type Options struct {
	// FarsiDigits rewrites ASCII digits in string cells. Number, date and
	// formula cells keep their values, and cells holding a URL are left
	// alone.
	FarsiDigits bool
}

type Report struct {
	Sheets    int
	Cells     int
	RTLCells  int
	Converted int
	RTLSheets []string
}

// Localize rewrites f in place. Cell styles of RTL cells are replaced, not
// merged.
func Localize(f *excelize.File, opts Options) (Report, error) {
	var report Report

	styleID, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal:   "right",
			ReadingOrder: readingOrderRTL,
		},
	})
	if err != nil {
		return report, errors.Wrap(err, errors.ErrCodeInternalError, "create rtl style")
	}

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return report, errors.Wrap(err, errors.ErrCodeInvalidInput, "read sheet "+name)
		}
		report.Sheets++

		nonEmpty, rtl := 0, 0
		for r, row := range rows {
			for c, value := range row {
				if strings.TrimSpace(value) == "" {
					continue
				}
				nonEmpty++

				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return report, errors.Wrap(err, errors.ErrCodeInternalError, "cell name")
				}

				if utils.IsRTL(value) {
					rtl++
					if err := f.SetCellStyle(name, cell, cell, styleID); err != nil {
						return report, errors.Wrap(err, errors.ErrCodeInternalError, "style "+name+"!"+cell)
					}
				}

				if opts.FarsiDigits {
					converted, err := convertDigits(f, name, cell, value)
					if err != nil {
						return report, err
					}
					if converted {
						report.Converted++
					}
				}
			}
		}

		report.Cells += nonEmpty
		report.RTLCells += rtl

		if nonEmpty > 0 && rtl*2 > nonEmpty {
			rightToLeft := true
			if err := f.SetSheetView(name, 0, &excelize.ViewOptions{RightToLeft: &rightToLeft}); err != nil {
				logger.Warn("Could not set sheet direction", "sheet", name, "error", err)
				continue
			}
			report.RTLSheets = append(report.RTLSheets, name)
		}
	}

	return report, nil
}

func convertDigits(f *excelize.File, sheet, cell, value string) (bool, error) {
	if !strings.ContainsAny(value, "0123456789") || len(utils.FindURLs(value)) > 0 {
		return false, nil
	}

	cellType, err := f.GetCellType(sheet, cell)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrCodeInternalError, "read type "+sheet+"!"+cell)
	}
	if cellType != excelize.CellTypeSharedString && cellType != excelize.CellTypeInlineString {
		return false, nil
	}

	if err := f.SetCellValue(sheet, cell, utils.FarsiDigits(value)); err != nil {
		return false, errors.Wrap(err, errors.ErrCodeInternalError, "write "+sheet+"!"+cell)
	}
	return true, nil
}

// LocalizeFile localizes the workbook at in and saves it to out.
func LocalizeFile(in, out string, opts Options) (Report, error) {
	f, err := excelize.OpenFile(in)
	if err != nil {
		return Report{}, errors.Wrap(err, errors.ErrCodeNotFound, "open "+in)
	}
	defer f.Close()

	report, err := Localize(f, opts)
	if err != nil {
		return report, err
	}

	if err := f.SaveAs(out); err != nil {
		return report, errors.Wrap(err, errors.ErrCodeInternalError, "save "+out)
	}

	logger.Info("Localized workbook",
		"in", in,
		"out", out,
		"sheets", report.Sheets,
		"cells", report.Cells,
		"rtl_cells", report.RTLCells,
		"converted", report.Converted,
	)
	return report, nil
}
