// Package calendar exporta eventos confirmados en formato iCalendar (RFC 5545).
package calendar

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/emersion/go-ical"

	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
)

const (
	productID = "-//Bienestar API//Eventos de bienestar//ES"
	uidDomain = "bienestar-api"
)

// ICalEncoder implementa events.CalendarEncoder con go-ical.
// Cada evento aprobado es un VEVENT de día completo en su fecha confirmada.
type ICalEncoder struct{}

// NewICalEncoder construye el encoder.
func NewICalEncoder() *ICalEncoder { return &ICalEncoder{} }

// EncodeEvents serializa los eventos con fecha confirmada; los demás se omiten.
func (e *ICalEncoder) EncodeEvents(ctx context.Context, events []*entity.Event) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")

	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if ev == nil || ev.ConfirmedDate == nil {
			continue
		}
		cal.Children = append(cal.Children, toVEvent(ev))
	}

	// go-ical rechaza un VCALENDAR sin componentes.
	if len(cal.Children) == 0 {
		return []byte(emptyCalendar()), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("ical: codificar calendario: %w", err)
	}
	return buf.Bytes(), nil
}

func toVEvent(ev *entity.Event) *ical.Component {
	day := *ev.ConfirmedDate
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, ev.ID+"@"+uidDomain)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, ev.UpdatedAt.UTC())
	ve.Props.SetDate(ical.PropDateTimeStart, day)
	ve.Props.SetDate(ical.PropDateTimeEnd, day.AddDate(0, 0, 1))
	ve.Props.SetText(ical.PropSummary, ev.EventName)
	ve.Props.SetText(ical.PropLocation, ev.Location)
	ve.Props.SetText(ical.PropCategories, ev.EventType)
	ve.Props.SetText(ical.PropStatus, "CONFIRMED")

	desc := []string{"Empresa: " + ev.CompanyName}
	if ev.VendorName != "" {
		desc = append(desc, "Proveedor: "+ev.VendorName)
	}
	ve.Props.SetText(ical.PropDescription, strings.Join(desc, "\n"))
	return ve
}

func emptyCalendar() string {
	return "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:" + productID + "\r\n" +
		"CALSCALE:GREGORIAN\r\n" +
		"END:VCALENDAR\r\n"
}
