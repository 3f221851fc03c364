package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"bucket-browser/feature/browse/models"
)

// TimeFormat is the layout of the Uploaded column. Times are rendered in UTC.
const TimeFormat = "2006-01-02 15:04:05"

//go:embed templates/listing.html
var templateFS embed.FS

var listingTemplate = template.Must(template.ParseFS(templateFS, "templates/listing.html"))

type page struct {
	Title      string
	ParentHref string
	Rows       []row
}

type row struct {
	Dir      bool
	Href     string
	Name     string
	Size     string
	Uploaded string
}

// Render returns the HTML document for a listing.
// It fails if an entry key does not extend the listing prefix.
func Render(listing *models.Listing, format SizeFormat) (string, error) {
	p := page{
		Title: listing.DisplayPrefix,
		Rows:  make([]row, 0, len(listing.Entries)),
	}

	if parent, ok := ParentKey(listing.DisplayPrefix); ok {
		p.ParentHref = Href(parent)
	}

	for _, e := range listing.Entries {
		name, err := models.DisplayName(listing.Prefix, e.Key)
		if err != nil {
			return "", err
		}

		r := row{
			Dir:  e.IsDir(),
			Href: Href(e.Key),
			Name: name,
		}
		if !r.Dir {
			r.Size = format.Format(e.Size)
			r.Uploaded = e.Uploaded.UTC().Format(TimeFormat)
		}
		p.Rows = append(p.Rows, r)
	}

	var buf bytes.Buffer
	if err := listingTemplate.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("failed to render listing: %w", err)
	}
	return buf.String(), nil
}
