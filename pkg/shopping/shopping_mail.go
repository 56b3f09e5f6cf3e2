package shopping

import (
	"EcoPanier/domain"
	"EcoPanier/pkg/expiry"
	"bytes"
	"html/template"
	"strconv"
)

const shoppingListSubject = "Votre liste de courses EcoPanier"

var shoppingListTemplate = template.Must(template.New("shopping").Parse(`<h2>Liste de courses</h2>
{{if .}}<ul>
{{range .}}  <li>{{.Name}} ({{.Quantity}} {{.Unit}}) - {{.Category}}, expire le {{.Expiry}}</li>
{{end}}</ul>{{else}}<p>Votre liste est vide.</p>{{end}}
`))

type mailLine struct {
	Name     string
	Quantity string
	Unit     string
	Category string
	Expiry   string
}

func renderShoppingList(items []domain.ShoppingListItem) (string, error) {
	lines := make([]mailLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, mailLine{
			Name:     item.Name,
			Quantity: strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			Unit:     item.Unit,
			Category: item.Category,
			Expiry:   expiry.FormatDate(item.ExpiryDate),
		})
	}

	var buf bytes.Buffer
	if err := shoppingListTemplate.Execute(&buf, lines); err != nil {
		return "", err
	}
	return buf.String(), nil
}
