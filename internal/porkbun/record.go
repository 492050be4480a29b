package porkbun

import (
	"encoding/json"
	"fmt"
)

// RecordType represents a DNS record type supported by the API.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeMX    RecordType = "MX"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeAlias RecordType = "ALIAS"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeNS    RecordType = "NS"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeTLSA  RecordType = "TLSA"
	RecordTypeCAA   RecordType = "CAA"
)

// validRecordTypes is the set of record types the API accepts.
var validRecordTypes = map[RecordType]bool{
	RecordTypeA:     true,
	RecordTypeMX:    true,
	RecordTypeCNAME: true,
	RecordTypeAlias: true,
	RecordTypeTXT:   true,
	RecordTypeNS:    true,
	RecordTypeAAAA:  true,
	RecordTypeSRV:   true,
	RecordTypeTLSA:  true,
	RecordTypeCAA:   true,
}

// RecordTypes returns the supported record types in display order.
func RecordTypes() []RecordType {
	return []RecordType{
		RecordTypeA, RecordTypeMX, RecordTypeCNAME, RecordTypeAlias,
		RecordTypeTXT, RecordTypeNS, RecordTypeAAAA, RecordTypeSRV,
		RecordTypeTLSA, RecordTypeCAA,
	}
}

// ValidateRecordType returns an error if t is not a supported record type.
func ValidateRecordType(t RecordType) error {
	if !validRecordTypes[t] {
		return fmt.Errorf("%w: unsupported record type %q", ErrInvalidOptions, t)
	}
	return nil
}

// Record mirrors the Porkbun DNS record object. All fields are strings
// on the wire, ttl and prio included.
type Record struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
	TTL     string `json:"ttl"`
	Prio    string `json:"prio"`
	Notes   string `json:"notes"`
}

// ParseRecords extracts the record list from a raw retrieve response.
func ParseRecords(raw json.RawMessage) ([]Record, error) {
	var body struct {
		Records []Record `json:"records"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("porkbun: failed to parse records: %w", err)
	}
	return body.Records, nil
}
