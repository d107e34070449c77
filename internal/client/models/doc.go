// Package models defines the payloads exchanged with the finance backend and
// the AI service. Amounts are decimal.Decimal so that values round-trip
// exactly; nothing here validates input, the backend owns the rules.
package models
