package ingest

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// sampleHeaders is the column layout ReadLoads recognizes out of the box.
var sampleHeaders = []interface{}{
	"Load Type", "Magnitude (kN)", "Position (m)", "Start Position (m)", "End Position (m)",
}

// WriteSampleTo writes an example load schedule: a 6 kN/m UDL over
// [0, 15] m, the textbook wL²/8 case with a 168.75 kNm midspan moment.
func WriteSampleTo(w io.Writer) error {
	f, err := sampleWorkbook()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// WriteSample writes the example workbook to disk.
func WriteSample(path string) error {
	f, err := sampleWorkbook()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func sampleWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &sampleHeaders); err != nil {
		f.Close()
		return nil, err
	}
	row := []interface{}{"UDL", 6.0, nil, 0.0, 15.0}
	if err := f.SetSheetRow(sheet, "A2", &row); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
