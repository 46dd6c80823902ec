package repositories

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	mimeFolder    = "application/vnd.google-apps.folder"
	mimeGoogleDoc = "application/vnd.google-apps.document"
	mimePDF       = "application/pdf"
	mimeText      = "text/plain"
)

// driveSource reads resumes from a Drive folder. Files inside one nested
// folder (resolved by name, usually "archive") are tagged archived; the
// decoder downstream only sees positional rows, so this backend stays
// interchangeable with the spreadsheet one.
type driveSource struct {
	svc           *drive.Service
	folderID      string
	archiveFolder string
}

func NewDriveSource(ctx context.Context, folderID, archiveFolder, apiKey string) (RowSource, error) {
	if folderID == "" {
		return nil, fmt.Errorf("drive folder id is required")
	}

	var opts []option.ClientOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}

	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive client: %w", err)
	}

	return &driveSource{
		svc:           svc,
		folderID:      folderID,
		archiveFolder: archiveFolder,
	}, nil
}

// GetRange implements RowSource.
func (d *driveSource) GetRange(ctx context.Context) ([][]string, error) {
	rows, err := d.collectRows(ctx, d.folderID, "")
	if err != nil {
		return nil, err
	}

	archiveID, err := d.resolveArchiveFolder(ctx)
	if err != nil {
		// The archive folder is optional; a missing one just means no
		// archived variants.
		log.Printf("⚠️  No archive folder resolved: %v\n", err)
		return rows, nil
	}

	archived, err := d.collectRows(ctx, archiveID, "archived")
	if err != nil {
		return nil, err
	}

	return append(rows, archived...), nil
}

func (d *driveSource) collectRows(ctx context.Context, folderID, status string) ([][]string, error) {
	query := fmt.Sprintf("'%s' in parents and trashed = false and mimeType != '%s'", folderID, mimeFolder)
	list, err := d.svc.Files.List().
		Q(query).
		Fields("files(id, name, mimeType, webViewLink)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list drive folder: %w", err)
	}

	var rows [][]string
	for _, file := range list.Files {
		content, err := d.fileContent(ctx, file)
		if err != nil {
			log.Printf("⚠️  Skipping drive file %s: %v\n", file.Name, err)
			continue
		}

		path := file.WebViewLink
		if path == "" {
			path = "#"
		}

		rows = append(rows, []string{file.Name, content, status, path})
	}

	return rows, nil
}

func (d *driveSource) resolveArchiveFolder(ctx context.Context) (string, error) {
	query := fmt.Sprintf(
		"'%s' in parents and trashed = false and mimeType = '%s' and name = '%s'",
		d.folderID, mimeFolder, d.archiveFolder,
	)
	list, err := d.svc.Files.List().Q(query).Fields("files(id)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to query archive folder: %w", err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("folder %q not found", d.archiveFolder)
	}
	return list.Files[0].Id, nil
}

func (d *driveSource) fileContent(ctx context.Context, file *drive.File) (string, error) {
	switch file.MimeType {
	case mimeGoogleDoc:
		resp, err := d.svc.Files.Export(file.Id, mimeText).Context(ctx).Download()
		if err != nil {
			return "", fmt.Errorf("failed to export doc: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("failed to read export body: %w", err)
		}
		return string(data), nil

	case mimePDF, mimeText:
		resp, err := d.svc.Files.Get(file.Id).Context(ctx).Download()
		if err != nil {
			return "", fmt.Errorf("failed to download file: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("failed to read file body: %w", err)
		}
		if file.MimeType == mimeText {
			return string(data), nil
		}
		return extractPDFText(data)

	default:
		return "", fmt.Errorf("unsupported mime type: %s", file.MimeType)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
	}

	text := builder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in pdf")
	}

	return text, nil
}
