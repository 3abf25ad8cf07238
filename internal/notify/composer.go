package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"StockDLC/internal/model"
)

// Message — готовое к отправке уведомление: текстовая и HTML-версии одного содержимого.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Compose собирает уведомление о товарах с истекающим сроком.
// Порядок товаров сохраняется как есть: сортирует выборка, а не композитор.
func Compose(to string, items []model.ItemRecord, days int) Message {
	return Message{
		To:      to,
		Subject: Subject(items, days),
		Text:    ComposeText(items, days),
		HTML:    ComposeHTML(items, days),
	}
}

func Subject(items []model.ItemRecord, days int) string {
	return fmt.Sprintf("[DLC alert] %d item(s) expiring within %s", len(items), dayWord(days))
}

// EmptyMessage — фиксированный текст для пустой выборки.
func EmptyMessage(days int) string {
	return fmt.Sprintf("No items expiring in the next %s.", dayWord(days))
}

func ComposeText(items []model.ItemRecord, days int) string {
	if len(items) == 0 {
		return EmptyMessage(days)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Items expiring within %s:\n", dayWord(days))
	for _, it := range items {
		fmt.Fprintf(&b, "- %s (%s, %s) - DLC %s\n", it.Name, it.Category, it.Location, it.DLC)
	}
	return b.String()
}

const cellStyle = "padding:6px 10px;border:1px solid #ddd"

var htmlTmpl = template.Must(template.New("expiring").Parse(`{{if not .Items -}}
<p>{{.Empty}}</p>
{{- else -}}
<p>The following items reach their use-by date within {{.Window}}:</p>
<table style="border-collapse:collapse;border:1px solid #ddd">
  <thead>
    <tr><th style="{{.Cell}};text-align:left">Name</th><th style="{{.Cell}};text-align:left">Category</th><th style="{{.Cell}};text-align:left">Location</th><th style="{{.Cell}};text-align:left">DLC</th></tr>
  </thead>
  <tbody>
{{- range .Items}}
    <tr><td style="{{$.Cell}}">{{.Name}}</td><td style="{{$.Cell}}">{{.Category}}</td><td style="{{$.Cell}}">{{.Location}}</td><td style="{{$.Cell}}">{{.DLC}}</td></tr>
{{- end}}
  </tbody>
</table>
{{- end}}`))

type htmlView struct {
	Items  []model.ItemRecord
	Empty  string
	Window string
	Cell   template.CSS
}

// ComposeHTML рендерит таблицу товаров. Имена приходят от пользователя,
// html/template экранирует их.
func ComposeHTML(items []model.ItemRecord, days int) string {
	var buf bytes.Buffer
	view := htmlView{
		Items:  items,
		Empty:  EmptyMessage(days),
		Window: dayWord(days),
		Cell:   template.CSS(cellStyle),
	}
	if err := htmlTmpl.Execute(&buf, view); err != nil {
		// шаблон статический, данные строковые: сюда не попадаем
		return "<p>" + template.HTMLEscapeString(ComposeText(items, days)) + "</p>"
	}
	return buf.String()
}

func dayWord(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
