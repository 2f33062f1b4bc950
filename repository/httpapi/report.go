package httpapi

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/presenza-app/presence-client-go/domain/report"
)

type ReportRepository struct {
	client *Client
}

func NewReportRepository(client *Client) *ReportRepository {
	return &ReportRepository{client: client}
}

func (r *ReportRepository) EmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) (report.Export, error) {
	path := fmt.Sprintf("/export_original_presence_overview/%s/%d/%02d",
		url.PathEscape(employeeID), year, int(month))
	fallback := fmt.Sprintf("presence_%s_%d_%02d.xlsx", employeeID, year, int(month))
	return r.export(ctx, path, fallback)
}

func (r *ReportRepository) AdminMonth(ctx context.Context, employeeID string, year int, month time.Month, format report.Format) (report.Export, error) {
	path := fmt.Sprintf("/export_modified_presence_overview/%s/%d/%02d/%t",
		url.PathEscape(employeeID), year, int(month), format == report.FormatPDF)
	fallback := fmt.Sprintf("presence_%s_%d_%02d.%s", employeeID, year, int(month), ext(format))
	return r.export(ctx, path, fallback)
}

func (r *ReportRepository) AllEmployees(ctx context.Context, year int, month time.Month, format report.Format) (report.Export, error) {
	path := fmt.Sprintf("/export_all_modified_presence_overview/%d/%02d/%t",
		year, int(month), format == report.FormatPDF)
	fallback := fmt.Sprintf("presence_all_%d_%02d.%s", year, int(month), ext(format))
	return r.export(ctx, path, fallback)
}

func (r *ReportRepository) export(ctx context.Context, path, fallbackName string) (report.Export, error) {
	res, err := r.client.download(ctx, path)
	if err != nil {
		return report.Export{}, err
	}
	exp := report.Export{
		Filename:    res.filename,
		ContentType: res.contentType,
		Data:        res.data,
	}
	if exp.Filename == "" {
		exp.Filename = fallbackName
	}
	return exp, nil
}

func ext(format report.Format) string {
	if format == report.FormatPDF {
		return "pdf"
	}
	return "xlsx"
}
