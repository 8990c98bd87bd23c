package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/formbase/forms-go/models"
	"github.com/formbase/forms-go/repositories"
	"github.com/formbase/forms-go/utils"
	"gorm.io/gorm"
)

type ExportService struct {
	Repos *repositories.Repos
}

func NewExportService(repos *repositories.Repos) *ExportService {
	return &ExportService{
		Repos: repos,
	}
}

// BuildResponsesCSV renders one row per response with a column per question
// in display order. Answer keys with no matching question are skipped.
func BuildResponsesCSV(form models.Form, responses []models.FormResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"response_id", "submitted_at"}
	for _, q := range form.Questions {
		header = append(header, q.Title)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, resp := range responses {
		row := []string{resp.ID, resp.SubmittedAt.UTC().Format(time.RFC3339)}
		for _, q := range form.Questions {
			answer, ok := resp.Answers[q.ID]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, answer.Resolve(q.Type).Display())
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportResponses builds the CSV for a form and archives a copy in the
// exports bucket. Returns the object name alongside the data so callers can
// both serve the download and reference the archived copy.
func (s *ExportService) ExportResponses(ctx context.Context, formID string) (string, []byte, error) {
	form, err := s.Repos.Form.FindByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrFormNotFound
		}
		return "", nil, err
	}

	responses, err := s.Repos.Response.ListByForm(formID)
	if err != nil {
		return "", nil, err
	}

	data, err := BuildResponsesCSV(form, responses)
	if err != nil {
		return "", nil, err
	}

	objectName := fmt.Sprintf("exports/%s/%s.csv", form.ID, time.Now().UTC().Format("20060102T150405Z"))
	if err := utils.UploadObject(ctx, objectName, "text/csv", bytes.NewReader(data), int64(len(data))); err != nil {
		return "", nil, err
	}
	return objectName, data, nil
}
