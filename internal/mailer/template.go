package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/fulfillment"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/model"
)

// AlertSubject is the subject line of one immediate alert email.
func AlertSubject(orderNumber string) string {
	return "🚨 Mixed Order Alert - Order #" + orderNumber
}

// DigestSubject is the subject line of one daily digest email.
func DigestSubject(totalOrders int) string {
	return fmt.Sprintf("Pending Order(s) Summary || %d Orders Require Attention", totalOrders)
}

// Renderer turns alert and digest data into the HTML email bodies. Pure
// formatting: both methods are free of side effects.
type Renderer struct {
	adminURL string
}

// NewRenderer builds a renderer; adminURL is the platform admin base used
// for "View Order" links.
func NewRenderer(adminURL string) *Renderer {
	return &Renderer{adminURL: strings.TrimRight(adminURL, "/")}
}

func (r *Renderer) orderEditURL(orderID int64) string {
	return fmt.Sprintf("%s/post.php?post=%d&action=edit", r.adminURL, orderID)
}

// statusDisplay maps a status slug to its display name.
func statusDisplay(status string) string {
	switch status {
	case "processing":
		return "Processing"
	case "partially-shipped":
		return "Partially Shipped"
	case "pending-payment-partially-shipped":
		return "Pending payment partially shipped"
	}

	words := strings.Split(status, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// statusBadge returns the background and text colors for a status badge.
func statusBadge(status string) (bg, text string) {
	switch status {
	case "partially-shipped":
		return "rgb(217, 169, 68)", "#1a0f05"
	case "pending-payment-partially-shipped":
		return "rgb(234, 207, 134)", "#1a0f05"
	case "processing":
		return "rgb(198, 225, 198)", "#155724"
	}
	return "#fff3cd", "#856404"
}

type alertView struct {
	OrderNumber       string
	StatusDisplay     string
	StatusColor       string
	EditURL           string
	CustomerName      string
	CustomerEmail     string
	OrderDate         string
	ProcessingTime    string
	Processed         []fulfillment.Item
	NotProcessed      []fulfillment.Item
	TotalProcessed    int
	TotalNotProcessed int
	NoteAuthor        string
	NoteDate          string
	NoteContent       string
	Event             string
}

type digestItemView struct {
	Product   string
	Quantity  int
	Fulfilled bool
}

type digestOrderView struct {
	Index           int
	OrderNumber     string
	EditURL         string
	DateShort       string
	OrderDate       string
	CustomerName    string
	CustomerEmail   string
	TotalFmt        string
	StatusDisplay   string
	BadgeBg         string
	BadgeText       string
	NotProcessedQty int
	ProcessedQty    int
	NoteAuthor      string
	NoteDate        string
	Items           []digestItemView
}

type digestView struct {
	GeneratedAt      string
	TotalOrders      int
	TotalUnprocessed int
	Orders           []digestOrderView
}

// RenderAlert renders the single-order immediate alert email body.
func (r *Renderer) RenderAlert(data *model.AlertData) (string, error) {
	bg, _ := statusBadge(data.Order.Status)
	v := alertView{
		OrderNumber:       data.Order.Number,
		StatusDisplay:     statusDisplay(data.Order.Status),
		StatusColor:       bg,
		EditURL:           r.orderEditURL(data.Order.ID),
		CustomerName:      data.Order.CustomerName(),
		CustomerEmail:     data.Order.BillingEmail,
		OrderDate:         data.Order.CreatedAt.Format("2006-01-02 15:04:05"),
		ProcessingTime:    data.Fulfillment.Timestamp,
		Processed:         data.Fulfillment.ProcessedItems,
		NotProcessed:      data.Fulfillment.NotProcessedItems,
		TotalProcessed:    data.Fulfillment.TotalProcessedQty,
		TotalNotProcessed: data.Fulfillment.TotalNotProcessedQty,
		NoteAuthor:        data.Note.Author,
		NoteDate:          data.Note.CreatedAt.Format("2006-01-02 15:04:05"),
		NoteContent:       data.Note.Content,
		Event:             data.Event,
	}

	var buf bytes.Buffer
	if err := alertTmpl.Execute(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderDigest renders the combined daily digest email body.
func (r *Renderer) RenderDigest(data *model.DigestData) (string, error) {
	v := digestView{
		GeneratedAt: data.GeneratedAt.UTC().Format("2006-01-02 15:04:05"),
		TotalOrders: data.TotalOrders,
	}

	for i, o := range data.Orders {
		bg, text := statusBadge(o.OrderStatus)
		ov := digestOrderView{
			Index:           i + 1,
			OrderNumber:     o.OrderNumber,
			EditURL:         r.orderEditURL(o.OrderID),
			DateShort:       o.OrderDate.Format("Jan 02, 15:04"),
			OrderDate:       o.OrderDate.Format("2006-01-02 15:04:05"),
			CustomerName:    o.CustomerName,
			CustomerEmail:   o.CustomerEmail,
			TotalFmt:        fmt.Sprintf("$%.2f", o.OrderTotal),
			StatusDisplay:   statusDisplay(o.OrderStatus),
			BadgeBg:         bg,
			BadgeText:       text,
			NotProcessedQty: o.Fulfillment.TotalNotProcessedQty,
			ProcessedQty:    o.Fulfillment.TotalProcessedQty,
			NoteAuthor:      o.NoteAuthor,
			NoteDate:        formatNoteDate(o.NoteDate),
		}

		for _, item := range o.Fulfillment.ProcessedItems {
			ov.Items = append(ov.Items, digestItemView{Product: item.Product, Quantity: item.Quantity, Fulfilled: true})
		}
		for _, item := range o.Fulfillment.NotProcessedItems {
			ov.Items = append(ov.Items, digestItemView{Product: item.Product, Quantity: item.Quantity})
		}

		v.TotalUnprocessed += o.Fulfillment.TotalNotProcessedQty
		v.Orders = append(v.Orders, ov)
	}

	var buf bytes.Buffer
	if err := digestTmpl.Execute(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatNoteDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

var alertTmpl = template.Must(template.New("alert").Parse(`<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Mixed Order Fulfillment Alert</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f5f5f5; font-family: 'Segoe UI', sans-serif; font-size: 14px; line-height: 1.6; color: #424242;">
    <table width="100%" cellpadding="0" cellspacing="0" border="0" style="background-color: #f5f5f5; padding: 20px 0;">
        <tr>
            <td align="center">
                <table width="100%" cellpadding="0" cellspacing="0" border="0" style="max-width: 800px; background-color: #ffffff; border-radius: 4px; overflow: hidden;">
                    <tr>
                        <td style="padding: 30px; background-color: #d32f2f; text-align: center;">
                            <h1 style="margin: 0 0 10px 0; font-size: 24px; font-weight: 600; color: #ffffff;">⚠️ Mixed Order Fulfillment Alert</h1>
                            <p style="margin: 0; font-size: 14px; color: #ffffff; opacity: 0.95;">Walsworth has partially fulfilled this order</p>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 30px;">
                            <table width="100%" cellpadding="0" cellspacing="0" border="0" style="margin-bottom: 30px; border: 1px solid #e0e0e0; border-radius: 4px;">
                                <tr>
                                    <td style="padding: 20px; background-color: #f5f5f5; border-bottom: 2px solid #d32f2f;">
                                        <h2 style="margin: 0; font-size: 18px; font-weight: 600; color: #d32f2f;">Order #{{.OrderNumber}}</h2>
                                        <p style="margin: 8px 0 0 0; font-size: 13px; color: #666666;">Status: <strong style="color: {{.StatusColor}};">{{.StatusDisplay}}</strong></p>
                                        <a href="{{.EditURL}}" style="display: inline-block; margin-top: 8px; padding: 8px 16px; background-color: #1976d2; color: #ffffff; text-decoration: none; border-radius: 4px; font-size: 13px;">View Order</a>
                                    </td>
                                </tr>
                                <tr>
                                    <td style="padding: 20px;">
                                        <p style="margin: 0 0 6px 0; font-size: 14px; color: #666666;"><strong style="color: #424242;">Customer:</strong> {{.CustomerName}}</p>
                                        <p style="margin: 0 0 6px 0; font-size: 14px; color: #666666;"><strong style="color: #424242;">Email:</strong> {{.CustomerEmail}}</p>
                                        <p style="margin: 0 0 6px 0; font-size: 14px; color: #666666;"><strong style="color: #424242;">Order Date:</strong> {{.OrderDate}}</p>
                                        <p style="margin: 0 0 20px 0; font-size: 14px; color: #666666;"><strong style="color: #424242;">Processing Time:</strong> {{.ProcessingTime}}</p>
                                        <table width="100%" cellpadding="0" cellspacing="0" border="0">
                                            <tr>
                                                <td width="48%" valign="top" style="padding-right: 2%;">
                                                    <div style="background-color: #e8f5e9; border-left: 4px solid #4caf50; padding: 15px; border-radius: 4px;">
                                                        <h3 style="margin: 0 0 12px 0; font-size: 15px; font-weight: 600; color: #2e7d32;">Fulfilled by Walsworth</h3>
                                                        <table width="100%" cellpadding="0" cellspacing="0" border="0" style="background-color: #ffffff; border-radius: 3px;">
{{- if .Processed}}
{{- range .Processed}}
                                                            <tr style="border-bottom: 1px solid #e0e0e0;">
                                                                <td style="padding: 8px 12px; font-weight: 600; color: #1976d2;">Qty {{.Quantity}}</td>
                                                                <td style="padding: 8px 12px; color: #424242;">{{.Product}}</td>
                                                            </tr>
{{- end}}
{{- else}}
                                                            <tr><td colspan="2" style="padding: 12px; color: #757575; font-style: italic; text-align: center;">No items fulfilled</td></tr>
{{- end}}
                                                        </table>
                                                        <p style="margin: 12px 0 0 0; font-size: 13px; font-weight: 600; color: #2e7d32; text-align: right;">Total: {{.TotalProcessed}} items</p>
                                                    </div>
                                                </td>
                                                <td width="48%" valign="top" style="padding-left: 2%;">
                                                    <div style="background-color: #ffebee; border-left: 4px solid #d32f2f; padding: 15px; border-radius: 4px;">
                                                        <h3 style="margin: 0 0 12px 0; font-size: 15px; font-weight: 600; color: #c62828;">NOT Fulfilled by Walsworth</h3>
                                                        <table width="100%" cellpadding="0" cellspacing="0" border="0" style="background-color: #ffffff; border-radius: 3px;">
{{- if .NotProcessed}}
{{- range .NotProcessed}}
                                                            <tr style="border-bottom: 1px solid #e0e0e0;">
                                                                <td style="padding: 8px 12px; font-weight: 600; color: #d32f2f;">Qty {{.Quantity}}</td>
                                                                <td style="padding: 8px 12px; color: #424242;">{{.Product}}</td>
                                                            </tr>
{{- end}}
{{- else}}
                                                            <tr><td colspan="2" style="padding: 12px; color: #757575; font-style: italic; text-align: center;">No items not fulfilled</td></tr>
{{- end}}
                                                        </table>
                                                        <p style="margin: 12px 0 0 0; font-size: 13px; font-weight: 600; color: #c62828; text-align: right;">Total: {{.TotalNotProcessed}} items</p>
                                                    </div>
                                                </td>
                                            </tr>
                                        </table>
                                    </td>
                                </tr>
                            </table>
                            <table width="100%" cellpadding="0" cellspacing="0" border="0" style="margin-bottom: 30px; background-color: #ffebee; border-left: 4px solid #d32f2f; border-radius: 4px;">
                                <tr>
                                    <td style="padding: 20px;">
                                        <h3 style="margin: 0 0 10px 0; font-size: 16px; font-weight: 600; color: #c62828;">⚡ Action Required</h3>
                                        <p style="margin: 0; font-size: 14px; color: #424242;"><strong>{{.TotalNotProcessed}}</strong> items from this order need alternative fulfillment. Please review and arrange fulfillment for the unfulfilled items.</p>
                                    </td>
                                </tr>
                            </table>
                            <table width="100%" cellpadding="0" cellspacing="0" border="0" style="border: 1px solid #e0e0e0; border-radius: 4px;">
                                <tr>
                                    <td style="padding: 20px; background-color: #f5f5f5; border-bottom: 2px solid #1976d2;">
                                        <h3 style="margin: 0; font-size: 16px; font-weight: 600; color: #1976d2;">📝 Order Note</h3>
                                    </td>
                                </tr>
                                <tr>
                                    <td style="padding: 20px;">
                                        <p style="margin: 0 0 6px 0; font-size: 14px; color: #666666;"><strong style="color: #424242;">Added by:</strong> {{.NoteAuthor}}</p>
                                        <p style="margin: 0 0 15px 0; font-size: 14px; color: #666666;"><strong style="color: #424242;">Date:</strong> {{.NoteDate}}</p>
                                        <div style="background-color: #f5f5f5; padding: 15px; border-radius: 4px; border-left: 4px solid #1976d2;">
                                            <p style="margin: 0; white-space: pre-line; font-family: 'Segoe UI', monospace; font-size: 13px; color: #424242;">{{.NoteContent}}</p>
                                        </div>
                                    </td>
                                </tr>
                            </table>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 20px 30px; background-color: #f9f9f9; border-top: 1px solid #e0e0e0; text-align: center;">
                            <p style="margin: 0 0 8px 0; font-size: 13px; font-weight: 600; color: #424242;">The Lionheart Foundation</p>
                            <p style="margin: 0 0 8px 0; font-size: 12px; color: #757575;">This is an automated notification</p>
                            <p style="margin: 0; font-size: 12px; color: #757575;">Event: {{.Event}}</p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>`))

var digestTmpl = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Daily Mixed Order Summary</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f4f6f8; font-family: 'Segoe UI', sans-serif; font-size: 14px; line-height: 1.6; color: #212529;">
    <table width="100%" cellpadding="0" cellspacing="0" border="0" style="background-color: #f4f6f8; padding: 20px 0;">
        <tr>
            <td align="center">
                <table width="100%" cellpadding="0" cellspacing="0" border="0" style="max-width: 800px; background-color: #ffffff; border-radius: 4px; overflow: hidden;">
                    <tr>
                        <td style="padding: 30px; background-color: #264584;">
                            <h1 style="font-size: 28px; font-weight: 600; margin: 0; color: #fff;">📋 Daily Mixed Order Summary</h1>
                            <p style="margin: 10px 0 0 0; font-size: 14px; color: #ffffff; opacity: 0.9;">Generated {{.GeneratedAt}} UTC &middot; {{.TotalOrders}} order(s) &middot; {{.TotalUnprocessed}} unprocessed item(s)</p>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 30px;">
                            <h2 style="color: #264584; font-size: 18px; font-weight: 700; margin: 0 0 16px 0;">📊 Quick Overview</h2>
                            <table width="100%" cellpadding="0" cellspacing="0" border="0" style="border: 1px solid #f1f3f5; border-radius: 4px; margin-bottom: 30px;">
                                <tr style="background-color: #f8f9fa;">
                                    <td style="padding: 12px 16px; font-size: 12px; font-weight: 700; color: #6c757d;">ORDER</td>
                                    <td style="padding: 12px 16px; font-size: 12px; font-weight: 700; color: #6c757d;">CUSTOMER</td>
                                    <td style="padding: 12px 16px; font-size: 12px; font-weight: 700; color: #6c757d;" align="center">STATUS</td>
                                    <td style="padding: 12px 16px; font-size: 12px; font-weight: 700; color: #6c757d;" align="center">UNPROCESSED</td>
                                    <td style="padding: 12px 16px;" align="center"></td>
                                </tr>
{{- range .Orders}}
                                <tr style="background-color: #fff;">
                                    <td style="padding: 14px 16px; border-bottom: 1px solid #f1f3f5;">
                                        <a href="{{.EditURL}}" style="color: #264584; font-weight: 700; text-decoration: none; font-size: 14px;">#{{.OrderNumber}}</a><br>
                                        <span style="font-size: 12px; color: #6c757d;">{{.DateShort}}</span>
                                    </td>
                                    <td style="padding: 14px 16px; border-bottom: 1px solid #f1f3f5;">
                                        <span style="color: #212529; font-size: 13px; font-weight: 600;">{{.CustomerName}}</span><br>
                                        <span style="font-size: 12px; color: #6c757d;">{{.TotalFmt}}</span>
                                    </td>
                                    <td style="padding: 14px 16px; text-align: center; border-bottom: 1px solid #f1f3f5;" align="center">
                                        <span style="display: inline-block; padding: 4px 8px; background-color: {{.BadgeBg}}; color: {{.BadgeText}}; border-radius: 4px; font-weight: 600; font-size: 10px;">{{.StatusDisplay}}</span>
                                    </td>
                                    <td style="padding: 14px 16px; text-align: center; border-bottom: 1px solid #f1f3f5;" align="center">
                                        <span style="font-size: 20px; font-weight: 700; color: #dc3545;">{{.NotProcessedQty}}</span><br>
                                        <span style="font-size: 11px; color: #6c757d;">items</span>
                                    </td>
                                    <td style="padding: 14px 16px; text-align: center; border-bottom: 1px solid #f1f3f5;" align="center">
                                        <a href="{{.EditURL}}" style="display: inline-block; padding: 6px 12px; background-color: #264584; color: #fff; text-decoration: none; border-radius: 4px; font-size: 11px; font-weight: 600;">View</a>
                                    </td>
                                </tr>
{{- end}}
                            </table>
                            <h2 style="color: #264584; font-size: 18px; font-weight: 700; margin: 0 0 20px 0;">📦 Detailed Order Breakdown</h2>
{{- range .Orders}}
                            <table width="100%" cellpadding="0" cellspacing="0" border="0" style="border: 1px solid #e9ecef; border-radius: 4px; margin-bottom: 24px;">
                                <tr>
                                    <td style="padding: 20px; background-color: #f8f9fa; border-bottom: 2px solid #264584;">
                                        <h3 style="margin: 0 0 6px 0; color: #264584; font-size: 20px; font-weight: 700;">{{.Index}}. Order <a href="{{.EditURL}}" style="color: #264584; text-decoration: none;">#{{.OrderNumber}}</a></h3>
                                        <span style="display: inline-block; padding: 4px 8px; background-color: {{.BadgeBg}}; color: {{.BadgeText}}; border-radius: 4px; font-weight: 600; font-size: 11px;">{{.StatusDisplay}}</span>
                                    </td>
                                </tr>
                                <tr>
                                    <td style="padding: 20px;">
                                        <p style="margin: 0 0 4px 0; font-size: 13px; color: #6c757d;"><strong style="color: #212529;">Customer:</strong> {{.CustomerName}} ({{.CustomerEmail}})</p>
                                        <p style="margin: 0 0 4px 0; font-size: 13px; color: #6c757d;"><strong style="color: #212529;">Order Date:</strong> {{.OrderDate}}</p>
                                        <p style="margin: 0 0 4px 0; font-size: 13px; color: #6c757d;"><strong style="color: #212529;">💰 Order Total:</strong> {{.TotalFmt}}</p>
                                        <p style="margin: 0 0 16px 0; font-size: 13px; color: #6c757d;"><strong style="color: #212529;">Note:</strong> {{.NoteAuthor}}{{if .NoteDate}} &middot; {{.NoteDate}}{{end}}</p>
                                        <h4 style="margin: 0 0 16px 0; color: #264584; font-size: 16px; font-weight: 700;">Order Items</h4>
                                        <table width="100%" cellpadding="0" cellspacing="0" border="0" style="border: 1px solid #f1f3f5; border-radius: 4px;">
                                            <tr style="background-color: #f8f9fa;">
                                                <td style="padding: 10px 14px; font-size: 12px; font-weight: 700; color: #6c757d;" align="left">PRODUCT</td>
                                                <td style="padding: 10px 14px; font-size: 12px; font-weight: 700; color: #6c757d;" align="center">QTY</td>
                                                <td style="padding: 10px 14px; font-size: 12px; font-weight: 700; color: #6c757d;" align="center">FULFILLMENT</td>
                                            </tr>
{{- range .Items}}
                                            <tr style="background-color: #fff;">
                                                <td style="padding: 12px 14px; color: #212529; border-bottom: 1px solid #f1f3f5; font-size: 13px;" align="left">{{.Product}}</td>
                                                <td style="padding: 12px 14px; color: #212529; border-bottom: 1px solid #f1f3f5; font-size: 13px;" align="center">{{.Quantity}}</td>
{{- if .Fulfilled}}
                                                <td style="padding: 12px 14px; border-bottom: 1px solid #f1f3f5;" align="center"><span style="display: inline-block; padding: 3px 8px; background-color: #d4edda; color: #155724; border-radius: 4px; font-weight: 600; font-size: 11px;">Fulfilled</span></td>
{{- else}}
                                                <td style="padding: 12px 14px; border-bottom: 1px solid #f1f3f5;" align="center"><span style="display: inline-block; padding: 3px 8px; background-color: #f8d7da; color: #721c24; border-radius: 4px; font-weight: 600; font-size: 11px;">Not Fulfilled</span></td>
{{- end}}
                                            </tr>
{{- end}}
                                        </table>
                                        <p style="margin: 14px 0 0 0; font-size: 13px; color: #6c757d; text-align: right;"><strong style="color: #155724;">{{.ProcessedQty}} fulfilled</strong> &middot; <strong style="color: #dc3545;">{{.NotProcessedQty}} not fulfilled</strong></p>
                                    </td>
                                </tr>
                            </table>
{{- end}}
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 20px 30px; background-color: #f8f9fa; border-top: 1px solid #e9ecef; text-align: center;">
                            <p style="margin: 0 0 8px 0; font-size: 13px; font-weight: 600; color: #212529;">The Lionheart Foundation</p>
                            <p style="margin: 0; font-size: 12px; color: #6c757d;">Orders stay in this summary until their status changes out of the tracked set.</p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>`))
