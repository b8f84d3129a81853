package domain

// Tipos de documento fiscal pesquisados no iCount. Receitas offline do
// cliente chegam como notas, recibos ou nota-recibo combinada
const (
	DocTypeInvoice = "invoice"
	DocTypeReceipt = "receipt"
	DocTypeInvRec  = "invrec"
)

var SearchedDocTypes = []string{DocTypeInvoice, DocTypeReceipt, DocTypeInvRec}

type Document struct {
	DocNum     string  `json:"docnum"`
	DocType    string  `json:"doctype"`
	ClientName string  `json:"client_name"`
	IssueDate  string  `json:"dateissued"`
	Total      float64 `json:"total"`
	Currency   string  `json:"currency_code"`
}

type SearchParams struct {
	CompanyID string
	APIToken  string
	FromDate  string // yyyy-mm-dd
	ToDate    string // yyyy-mm-dd
}
