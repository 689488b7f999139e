// Package querystring maps the directory query to and from URL parameters.
package querystring

import (
	"net/url"
	"strings"

	"doctor-directory/internal/domain/entity"
)

const (
	ParamSearch           = "search"
	ParamConsultationType = "consultationType"
	ParamSpecialty        = "specialty"
	ParamSortBy           = "sortBy"
)

// Decode reads the directory query from values. Absent parameters decode to
// their zero value, unknown ones are ignored, and repeated or empty
// specialty values are dropped.
func Decode(values url.Values) entity.DirectoryQuery {
	query := entity.DirectoryQuery{
		SearchTerm: values.Get(ParamSearch),
		Filter: entity.DoctorFilter{
			ConsultationType: entity.ConsultationType(values.Get(ParamConsultationType)),
			SortBy:           entity.SortKey(values.Get(ParamSortBy)),
		},
	}

	seen := make(map[string]struct{})
	for _, s := range values[ParamSpecialty] {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		query.Filter.Specialties = append(query.Filter.Specialties, s)
	}

	return query
}

// DecodeRaw parses a raw query string. Malformed pairs are skipped.
func DecodeRaw(rawQuery string) entity.DirectoryQuery {
	values, _ := url.ParseQuery(rawQuery)
	return Decode(values)
}

// Encode serialises query without a leading "?". Parameters are written in a
// fixed order (search, consultationType, sortBy, then each specialty) and
// empty ones are omitted, so equal queries always encode identically.
func Encode(query entity.DirectoryQuery) string {
	var b strings.Builder
	add := func(key, value string) {
		if value == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}

	add(ParamSearch, query.SearchTerm)
	add(ParamConsultationType, string(query.Filter.ConsultationType))
	add(ParamSortBy, string(query.Filter.SortBy))
	for _, s := range query.Filter.Specialties {
		add(ParamSpecialty, s)
	}

	return b.String()
}

// Href turns an encoded query into a link relative to path.
func Href(path string, query entity.DirectoryQuery) string {
	encoded := Encode(query)
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

// Canonical reports the canonical encoding of rawQuery and whether rawQuery
// already is that encoding.
func Canonical(rawQuery string) (string, bool) {
	canonical := Encode(DecodeRaw(rawQuery))
	return canonical, canonical == rawQuery
}
