package entities

type IntentKind string

const (
	IntentCommissionReport IntentKind = "commission_report"
	IntentOSPasswordQuery  IntentKind = "os_password_query"
	IntentOSGenericQuery   IntentKind = "os_generic_query"
	IntentUnrecognized     IntentKind = "unrecognized"
)

// Intent is the classified purpose of a message. OrderNumber is set only for
// the two OS kinds; Clarification only for an Unrecognized password request
// that carried no number.
type Intent struct {
	Kind          IntentKind
	OrderNumber   string
	Clarification string
}

func CommissionReportIntent() Intent { return Intent{Kind: IntentCommissionReport} }

func OSPasswordQueryIntent(orderNumber string) Intent {
	return Intent{Kind: IntentOSPasswordQuery, OrderNumber: orderNumber}
}

func OSGenericQueryIntent(orderNumber string) Intent {
	return Intent{Kind: IntentOSGenericQuery, OrderNumber: orderNumber}
}

func UnrecognizedIntent() Intent { return Intent{Kind: IntentUnrecognized} }

func (i Intent) IsOrderQuery() bool {
	return i.Kind == IntentOSPasswordQuery || i.Kind == IntentOSGenericQuery
}
