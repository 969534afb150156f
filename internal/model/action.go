package model

// ActionID identifies a menu operation
type ActionID string

const (
	ActionViewBalance ActionID = "view_balance"
	ActionPassGo      ActionID = "pass_go"
	ActionCollect     ActionID = "collect"
	ActionPayBank     ActionID = "pay_bank"
	ActionTransfer    ActionID = "transfer"
	ActionIncomeTax   ActionID = "income_tax"
	ActionPropertyTax ActionID = "property_tax"
)
