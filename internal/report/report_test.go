package report

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Girder/internal/analysis"
	"Girder/internal/diagram"
	"Girder/internal/ingest"
	"Girder/internal/statics"
)

func runAnalysis(t *testing.T) (analysis.Result, []byte, []byte) {
	t.Helper()

	loads := []statics.Load{statics.DistributedLoad{Intensity: 6, Start: 0, End: 15}}
	res, err := analysis.Run(statics.BeamModel{Span: 15, Loads: loads}, 200)
	require.NoError(t, err)

	sfd, err := diagram.RenderProfile(res.Profile, diagram.Shear)
	require.NoError(t, err)
	bmd, err := diagram.RenderProfile(res.Profile, diagram.Moment)
	require.NoError(t, err)
	return res, sfd, bmd
}

func TestBuildProducesPDF(t *testing.T) {
	res, sfd, bmd := runAnalysis(t)

	headers, rows := LoadRows([]statics.Load{
		statics.DistributedLoad{Intensity: 6, Start: 0, End: 15},
	})
	pdf := Build(Meta{Title: "UDL verification", Project: "Girder", Author: "QA"}, headers, rows, res, sfd, bmd)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "expected PDF magic bytes")
	assert.Greater(t, buf.Len(), 10_000, "report with embedded diagrams should not be tiny")
}

func TestLoadRows(t *testing.T) {
	headers, rows := LoadRows([]statics.Load{
		statics.PointLoad{Magnitude: 10, Position: 5},
		statics.DistributedLoad{Intensity: 6.5, Start: 0, End: 15},
	})

	require.Len(t, headers, 5)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Point", "10", "5", "", ""}, rows[0])
	assert.Equal(t, []string{"UDL", "6.50", "", "0", "15"}, rows[1])
}

func TestGenerateHandler(t *testing.T) {
	body, err := json.Marshal(Input{
		Meta:   Meta{Title: "Test report"},
		Loads:  []analysis.LoadInput{{Type: "point", Magnitude: 10, Position: 5}},
		SpanM:  10,
		Points: 100,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/tools/report/pdf", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	(&Handler{}).Generate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestGenerateHandlerRejectsInvalidModel(t *testing.T) {
	body, err := json.Marshal(Input{
		Loads: []analysis.LoadInput{{Type: "point", Magnitude: 10, Position: 20}},
		SpanM: 10,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/tools/report/pdf", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	(&Handler{}).Generate(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportHandler(t *testing.T) {
	var workbook bytes.Buffer
	require.NoError(t, ingest.WriteSampleTo(&workbook))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "loads.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbook.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("title", "Imported schedule"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/tools/report/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Import(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestImportHandlerRequiresFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/tools/report/import", nil)
	rec := httptest.NewRecorder()
	(&Handler{}).Import(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
