// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tone defines the closed set of tones a rewrite can target.
//
// The catalog is static display data. The instruction sent to the model for
// each tone lives in the adjust package; both are keyed by Kind.
package tone

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a tone.
type Kind string

const (
	Professional Kind = "professional"
	Polite       Kind = "polite"
	Casual       Kind = "casual"
	Friendly     Kind = "friendly"
	Persuasive   Kind = "persuasive"
	Humorous     Kind = "humorous"
	Urgent       Kind = "urgent"
)

// Default is the tone selected when a session starts.
const Default = Polite

// ErrUnknownTone is returned when a tone id is not part of the catalog.
var ErrUnknownTone = errors.New("unknown tone")

// Option is the display metadata for one tone.
type Option struct {
	ID          Kind   `json:"id"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Badge returns the short label shown next to history entries.
func (o Option) Badge() string {
	if i := strings.IndexByte(o.Label, ' '); i > 0 {
		return o.Label[:i]
	}
	return o.Label
}

var catalog = []Option{
	{ID: Professional, Label: "ทางการ (Professional)", Icon: "💼", Description: "ภาษาทางการสำหรับที่ทำงานและเอกสารราชการ"},
	{ID: Polite, Label: "สุภาพ (Polite)", Icon: "🙏", Description: "ภาษาสุภาพ มีคำลงท้ายครับ/ค่ะ"},
	{ID: Casual, Label: "เป็นกันเอง (Casual)", Icon: "😎", Description: "คุยแบบเพื่อนร่วมงานที่สนิท แต่ยังชัดเจน"},
	{ID: Friendly, Label: "เป็นมิตร (Friendly)", Icon: "😊", Description: "อบอุ่น สร้างความรู้สึกที่ดี"},
	{ID: Persuasive, Label: "โน้มน้าวใจ (Persuasive)", Icon: "🎯", Description: "ชักชวน เหมาะกับการขายและเชิญชวน"},
	{ID: Humorous, Label: "ขำขัน (Humorous)", Icon: "😂", Description: "สนุกสนาน มีอารมณ์ขันและความคิดสร้างสรรค์"},
	{ID: Urgent, Label: "เร่งด่วน (Urgent)", Icon: "⚡", Description: "กระชับ ได้ใจความ ต้องดำเนินการทันที"},
}

// All returns every tone in catalog order.
func All() []Kind {
	kinds := make([]Kind, len(catalog))
	for i, o := range catalog {
		kinds[i] = o.ID
	}
	return kinds
}

// Catalog returns a copy of the tone catalog in display order.
func Catalog() []Option {
	out := make([]Option, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for k.
func Lookup(k Kind) (Option, bool) {
	for _, o := range catalog {
		if o.ID == k {
			return o, true
		}
	}
	return Option{}, false
}

// Index returns the catalog position of k, or -1.
func Index(k Kind) int {
	for i, o := range catalog {
		if o.ID == k {
			return i
		}
	}
	return -1
}

// Parse converts a tone id (case-insensitive) into a Kind.
func Parse(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTone, s)
	}
	return k, nil
}

// Valid reports whether k is part of the catalog.
func (k Kind) Valid() bool {
	return Index(k) >= 0
}

func (k Kind) String() string {
	return string(k)
}
