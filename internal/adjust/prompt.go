// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package adjust

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jeranaias/thaitone/internal/tone"
)

// Temperature is the sampling temperature sent with every request.
const Temperature = 0.7

// SystemInstruction is the fixed role given to the model.
const SystemInstruction = `คุณคือผู้เชี่ยวชาญด้านภาษาไทยและการปรับโทนการสื่อสาร (Copywriting Expert).
หน้าที่ของคุณคือรับข้อความจากผู้ใช้และปรับเปลี่ยนโทน (Tone of Voice) ให้ตรงตามที่กำหนด โดยที่ยังคงรักษา "เนื้อหาสำคัญ" และ "จุดประสงค์เดิม" ของข้อความไว้อย่างครบถ้วน.
โปรดพิจารณา "สถานการณ์" หรือ "บริบท" ที่ผู้ใช้ระบุมาด้วยเพื่อให้เลือกใช้คำศัพท์และระดับภาษาที่เหมาะสมที่สุด
โปรดตอบกลับเฉพาะข้อความที่ปรับปรุงแล้วเท่านั้น ไม่ต้องมีคำเกริ่นนำหรือคำอธิบายเพิ่มเติม`

// instructions holds exactly one entry per tone.Kind.
var instructions = map[tone.Kind]string{
	tone.Professional: "ปรับให้เป็นภาษาทางการ (Formal) เหมาะสำหรับการสื่อสารในที่ทำงาน หรือเอกสารทางราชการ",
	tone.Polite:       "ปรับให้เป็นภาษาสุภาพ (Polite) ใช้คำลงท้ายที่เหมาะสม เช่น 'ครับ/ค่ะ' และใช้คำสรรพนามที่สุภาพ",
	tone.Casual:       "ปรับให้เป็นภาษาเป็นกันเอง (Casual) เหมือนคุยกับเพื่อนร่วมงานที่สนิท แต่ยังคงความชัดเจน",
	tone.Friendly:     "ปรับให้มีโทนที่อบอุ่นและเป็นมิตร (Friendly) เน้นการสร้างความรู้สึกที่ดี",
	tone.Persuasive:   "ปรับให้มีพลังในการโน้มน้าวใจ (Persuasive) เหมาะสำหรับการเชิญชวนหรือการขาย",
	tone.Humorous:     "ปรับให้ดูสนุกสนาน มีอารมณ์ขัน (Humorous) และมีความคิดสร้างสรรค์",
	tone.Urgent:       "ปรับให้กระชับ ได้ใจความ และสื่อถึงความจำเป็นที่ต้องดำเนินการทันที (Urgent)",
}

// Instruction returns the model instruction for k.
func Instruction(k tone.Kind) (string, bool) {
	s, ok := instructions[k]
	return s, ok
}

// BuildPrompt composes the user prompt for one adjustment. A blank scenario
// produces no scenario line.
func BuildPrompt(text string, k tone.Kind, scenario string) string {
	text = norm.NFC.String(text)
	scenario = norm.NFC.String(strings.TrimSpace(scenario))

	var b strings.Builder
	b.WriteString("\n")
	if scenario != "" {
		b.WriteString(`สถานการณ์/บริบท: "`)
		b.WriteString(scenario)
		b.WriteString("\"\n")
	}
	b.WriteString("ข้อความที่ต้องการปรับ: \n\"")
	b.WriteString(text)
	b.WriteString("\"\n\nโทนที่ต้องการ: ")
	b.WriteString(instructions[k])
	b.WriteString("\n\nโปรดแสดงข้อความที่ปรับแล้วในภาษาไทย:\n")
	return b.String()
}
