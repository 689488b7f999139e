package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Upstream DTOs
//
// The upstream list is hand-maintained JSON, so every field decodes
// leniently: a value of an unexpected type degrades to its zero value instead
// of failing the whole list.

type RawDoctor struct {
	ID             FlexString      `json:"id"`
	Name           FlexString      `json:"name"`
	Photo          FlexString      `json:"photo"`
	Specialities   RawSpecialities `json:"specialities"`
	Experience     FlexString      `json:"experience"`
	Fees           FlexString      `json:"fees"`
	Qualifications FlexString      `json:"qualifications"`
	Clinic         RawClinic       `json:"clinic"`
	VideoConsult   FlexBool        `json:"video_consult"`
	InClinic       FlexBool        `json:"in_clinic"`
}

type RawSpeciality struct {
	Name FlexString `json:"name"`
}

type RawSpecialities []RawSpeciality

func (s *RawSpecialities) UnmarshalJSON(data []byte) error {
	if !isJSONKind(data, '[') {
		*s = nil
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	out := make(RawSpecialities, 0, len(items))
	for _, item := range items {
		if !isJSONKind(item, '{') {
			continue
		}
		var spec RawSpeciality
		if err := json.Unmarshal(item, &spec); err != nil {
			return err
		}
		out = append(out, spec)
	}
	*s = out
	return nil
}

type RawClinic struct {
	Name    FlexString `json:"name"`
	Address RawAddress `json:"address"`
}

func (c *RawClinic) UnmarshalJSON(data []byte) error {
	if !isJSONKind(data, '{') {
		*c = RawClinic{}
		return nil
	}
	type plain RawClinic
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = RawClinic(p)
	return nil
}

type RawAddress struct {
	City FlexString `json:"city"`
}

func (a *RawAddress) UnmarshalJSON(data []byte) error {
	if !isJSONKind(data, '{') {
		*a = RawAddress{}
		return nil
	}
	type plain RawAddress
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = RawAddress(p)
	return nil
}

// FlexString accepts a JSON string, number or array of scalars. Arrays are
// joined with ", "; null, booleans and objects become "".
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*s = ""
		return nil
	}
	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
	case '[':
		var items []FlexString
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if item != "" {
				parts = append(parts, string(item))
			}
		}
		*s = FlexString(strings.Join(parts, ", "))
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*s = FlexString(n.String())
	default:
		*s = ""
	}
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// FlexBool follows JavaScript truthiness: false, 0, "", null are false,
// anything else is true.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*b = false
		return nil
	}
	switch data[0] {
	case 't':
		*b = true
	case 'f', 'n':
		*b = false
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*b = v != ""
	case '[', '{':
		*b = true
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*b = f != 0
	}
	return nil
}

func isJSONKind(data []byte, open byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == open
}
