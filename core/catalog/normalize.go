// ABOUTME: Normalization from the heterogeneous remote record shape to domain.Product
// ABOUTME: Missing or malformed sub-fields default field-by-field, never abort a record

package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"

	"multistore-products-api/core/domain"
	htmlutil "multistore-products-api/pkg/utils/html"
)

// remoteProduct mirrors the subset of the remote listing record the
// aggregator cares about. Prices arrive as strings on most stores and as
// numbers on some, so they get a dedicated decoder.
type remoteProduct struct {
	ID               int64         `json:"id"`
	Name             string        `json:"name"`
	Slug             string        `json:"slug"`
	Permalink        string        `json:"permalink"`
	Price            remotePrice   `json:"price"`
	RegularPrice     remotePrice   `json:"regular_price"`
	SalePrice        remotePrice   `json:"sale_price"`
	Images           []remoteImage `json:"images"`
	ShortDescription string        `json:"short_description"`
	Description      string        `json:"description"`
	Categories       []remoteTerm  `json:"categories"`
	Tags             []remoteTerm  `json:"tags"`
	StockStatus      string        `json:"stock_status"`
	DateCreated      string        `json:"date_created"`
	DateModified     string        `json:"date_modified"`
}

// remoteImage carries only the URL; everything else is discarded
type remoteImage struct {
	Src string `json:"src"`
}

// remoteTerm is a category or tag reference reduced to its name
type remoteTerm struct {
	Name string `json:"name"`
}

// remotePrice decodes a price that may be a JSON string, a number, null,
// or absent. Absent and null stay distinguishable from zero downstream.
type remotePrice struct {
	set   bool
	value float64
}

// UnmarshalJSON implements json.Unmarshaler
func (p *remotePrice) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		p.set = true
		if parsed, err := strconv.ParseFloat(asString, 64); err == nil {
			p.value = parsed
		}
		return nil
	}

	var asNumber float64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		p.set = true
		p.value = asNumber
	}

	// A price of an unexpected type defaults rather than failing the record
	return nil
}

// pointer returns nil for absent prices and the parsed value otherwise
func (p remotePrice) pointer() *float64 {
	if !p.set {
		return nil
	}
	v := p.value
	return &v
}

// normalizeProduct converts one raw remote record into the internal
// representation. Decoding errors are ignored: whatever fields decoded
// before the error are kept and the rest take their zero defaults.
func normalizeProduct(record json.RawMessage, source domain.Source) domain.Product {
	var remote remoteProduct
	_ = json.Unmarshal(record, &remote)

	firstImage := ""
	if len(remote.Images) > 0 {
		firstImage = remote.Images[0].Src
	}

	categories := make([]string, 0, len(remote.Categories))
	for _, term := range remote.Categories {
		categories = append(categories, term.Name)
	}

	tags := make([]string, 0, len(remote.Tags))
	for _, term := range remote.Tags {
		tags = append(tags, term.Name)
	}

	return domain.Product{
		ID:               remote.ID,
		SourceID:         source.ID,
		SourceName:       source.Name,
		Name:             remote.Name,
		Slug:             remote.Slug,
		Permalink:        remote.Permalink,
		Price:            remote.Price.pointer(),
		RegularPrice:     remote.RegularPrice.pointer(),
		SalePrice:        remote.SalePrice.pointer(),
		Image:            firstImage,
		ShortDescription: htmlutil.StripHTML(remote.ShortDescription),
		Description:      remote.Description,
		Categories:       categories,
		Tags:             tags,
		StockStatus:      remote.StockStatus,
		DateCreated:      remote.DateCreated,
		DateModified:     remote.DateModified,
	}
}
