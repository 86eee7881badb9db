package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"solenoid/types"
)

// CSVColumns 列名
var CSVColumns = []string{"t (s)", "Phi (Wb)", "emf (V)", "emf closed form (V)"}

// CSV 时间序列表格
type CSV struct{}

// Render 每个采样一行
func (*CSV) Render(frame *types.Frame, w io.Writer) error {
	s := frame.Series
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVColumns); err != nil {
		return err
	}
	for i := range s.Times {
		row := []string{
			strconv.FormatFloat(s.Times[i], 'g', -1, 64),
			strconv.FormatFloat(s.Flux[i], 'g', -1, 64),
			strconv.FormatFloat(s.EMF[i], 'g', -1, 64),
			strconv.FormatFloat(s.ClosedFormEMF[i], 'g', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (*CSV) Extension() string { return "csv" }
