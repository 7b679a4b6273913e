// Package sms renders and dispatches the renter-facing text messages of the
// rental lifecycle.
package sms

import (
	"fmt"

	"github.com/valyala/fasttemplate"

	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// Message templates keyed by the names in ports. Placeholders use {{ }} tags.
var templates = map[string]string{
	ports.MsgReservationConfirmed:   "[정장대여] {{name}}님, {{visit_at}} 방문 예약이 확정되었습니다.",
	ports.MsgReservationRescheduled: "[정장대여] {{name}}님, 방문 일정이 {{visit_at}}(으)로 변경되었습니다.",
	ports.MsgReservationCancelled:   "[정장대여] {{name}}님, 방문 예약이 취소되었습니다. 다음에 또 찾아주세요.",
	ports.MsgProgramInvite:          "[정장대여] {{name}}님, 청년 취업지원 프로그램 대상입니다. 방문 시 무료 대여 쿠폰을 받아가세요.",
	ports.MsgRentalStarted:          "[정장대여] {{name}}님, 대여가 시작되었습니다. 반납 기한은 {{target_date}}입니다.",
	ports.MsgDonorStory:             "[정장대여] {{name}}님이 입으신 정장은 {{donor}}님이 기증하셨습니다. \"{{story}}\"",
	ports.MsgReturnVisit:            "[정장대여] {{name}}님, 반납이 완료되었습니다. 이용해 주셔서 감사합니다.",
	ports.MsgReturnMail:             "[정장대여] {{name}}님, 택배 반납이 접수되었습니다. 이용해 주셔서 감사합니다.",
	ports.MsgOverdueReminder:        "[정장대여] {{name}}님, 반납 기한({{target_date}})이 지났습니다. 빠른 반납 부탁드립니다.",
}

// TemplateRenderer implements ports.MessageRenderer over the built-in
// template catalog.
type TemplateRenderer struct{}

// NewTemplateRenderer creates a renderer.
func NewTemplateRenderer() TemplateRenderer {
	return TemplateRenderer{}
}

// Render fills the named template with the given data. Unknown template
// names are an error; missing placeholders render empty.
func (TemplateRenderer) Render(name string, data map[string]any) (string, error) {
	tpl, ok := templates[name]
	if !ok {
		return "", errs.NewObjectNotFoundError("message template", name)
	}

	values := make(map[string]any, len(data))
	for key, value := range data {
		values[key] = fmt.Sprint(value)
	}

	return fasttemplate.ExecuteString(tpl, "{{", "}}", values), nil
}
