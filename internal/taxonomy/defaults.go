// Package taxonomy provides the category catalog used by the
// classification pipeline: a process-wide immutable set of default
// definitions plus per-tenant custom definitions stored in YAML.
package taxonomy

import "warren/finparse/internal/models"

// Generic category keys the validation engine tries to sharpen before
// accepting. Kept here so classifier and validation agree on the set.
const (
	KeyOtherRevenue  = "other_revenue"
	KeyOtherIncome   = "other_income"
	KeyOtherExpense  = "other_expense"
	KeyMiscellaneous = "miscellaneous"
	KeyUncategorized = "uncategorized"
)

func labels(en, es string) map[string]string {
	return map[string]string{
		models.LocaleEnglish: en,
		models.LocaleSpanish: es,
	}
}

// defaultDefinitions is the shipped taxonomy. Validated once at load;
// never mutated afterwards.
var defaultDefinitions = []models.CategoryDefinition{
	// Profit and loss - revenue side
	{Key: "sales_revenue", Labels: labels("Sales Revenue", "Ingresos por Ventas"), IsInflow: true, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "revenue"},
	{Key: "service_revenue", Labels: labels("Service Revenue", "Ingresos por Servicios"), IsInflow: true, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "revenue"},
	{Key: "interest_income", Labels: labels("Interest Income", "Ingresos Financieros"), IsInflow: true, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "revenue"},
	{Key: KeyOtherRevenue, Labels: labels("Other Revenue", "Otros Ingresos"), IsInflow: true, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "revenue"},
	{Key: KeyOtherIncome, Labels: labels("Other Income", "Otros Ingresos Diversos"), IsInflow: true, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "revenue"},
	{Key: "total_revenue", Labels: labels("Total Revenue", "Ingresos Totales"), IsInflow: true, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeTotal, Group: "revenue"},

	// Profit and loss - cost and expense side
	{Key: "cost_of_sales", Labels: labels("Cost of Sales", "Costo de Ventas"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "cost_of_sales"},
	{Key: "gross_profit", Labels: labels("Gross Profit", "Utilidad Bruta"), IsInflow: true, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeTotal, Group: "cost_of_sales"},
	{Key: "operating_expenses", Labels: labels("Operating Expenses", "Gastos Operativos"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeSection, Group: "operating"},
	{Key: "operating_expense", Labels: labels("Operating Expense", "Gasto Operativo"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: "personnel_costs", Labels: labels("Personnel Costs", "Costos de Personal"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: "salaries_wages", Labels: labels("Salaries and Wages", "Sueldos y Salarios"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: "rent_expense", Labels: labels("Rent Expense", "Gasto de Alquiler"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: "utilities_expense", Labels: labels("Utilities", "Servicios Públicos"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: "marketing_expense", Labels: labels("Marketing and Advertising", "Mercadotecnia y Publicidad"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: "professional_services", Labels: labels("Professional Services", "Servicios Profesionales"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: "insurance_expense", Labels: labels("Insurance", "Seguros"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: "travel_expense", Labels: labels("Travel and Entertainment", "Viajes y Representación"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: "office_supplies", Labels: labels("Office Supplies", "Material de Oficina"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: "depreciation_amortization", Labels: labels("Depreciation and Amortization", "Depreciación y Amortización"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: "interest_expense", Labels: labels("Interest Expense", "Gastos Financieros"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "financial"},
	{Key: "tax_expense", Labels: labels("Taxes", "Impuestos"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "financial"},
	{Key: KeyOtherExpense, Labels: labels("Other Expense", "Otros Gastos"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: KeyMiscellaneous, Labels: labels("Miscellaneous", "Varios"), IsInflow: false, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: "net_income", Labels: labels("Net Income", "Utilidad Neta"), IsInflow: true, StatementType: models.StatementProfitLoss, CategoryType: models.CategoryTypeTotal, Group: "result"},

	// Balance sheet
	{Key: "cash_equivalents", Labels: labels("Cash and Equivalents", "Efectivo y Equivalentes"), IsInflow: true, StatementType: models.StatementBalanceSheet, CategoryType: models.CategoryTypeAccount, Group: "assets"},
	{Key: "accounts_receivable", Labels: labels("Accounts Receivable", "Cuentas por Cobrar"), IsInflow: true, StatementType: models.StatementBalanceSheet, CategoryType: models.CategoryTypeAccount, Group: "assets"},
	{Key: "inventory", Labels: labels("Inventory", "Inventarios"), IsInflow: true, StatementType: models.StatementBalanceSheet, CategoryType: models.CategoryTypeAccount, Group: "assets"},
	{Key: "fixed_assets", Labels: labels("Fixed Assets", "Activos Fijos"), IsInflow: true, StatementType: models.StatementBalanceSheet, CategoryType: models.CategoryTypeAccount, Group: "assets"},
	{Key: "total_assets", Labels: labels("Total Assets", "Activos Totales"), IsInflow: true, StatementType: models.StatementBalanceSheet, CategoryType: models.CategoryTypeTotal, Group: "assets"},
	{Key: "accounts_payable", Labels: labels("Accounts Payable", "Cuentas por Pagar"), IsInflow: false, StatementType: models.StatementBalanceSheet, CategoryType: models.CategoryTypeAccount, Group: "liabilities"},
	{Key: "short_term_debt", Labels: labels("Short-Term Debt", "Deuda a Corto Plazo"), IsInflow: false, StatementType: models.StatementBalanceSheet, CategoryType: models.CategoryTypeAccount, Group: "liabilities"},
	{Key: "long_term_debt", Labels: labels("Long-Term Debt", "Deuda a Largo Plazo"), IsInflow: false, StatementType: models.StatementBalanceSheet, CategoryType: models.CategoryTypeAccount, Group: "liabilities"},
	{Key: "equity", Labels: labels("Equity", "Capital Contable"), IsInflow: true, StatementType: models.StatementBalanceSheet, CategoryType: models.CategoryTypeAccount, Group: "equity"},
	{Key: "retained_earnings", Labels: labels("Retained Earnings", "Utilidades Retenidas"), IsInflow: true, StatementType: models.StatementBalanceSheet, CategoryType: models.CategoryTypeAccount, Group: "equity"},

	// Cash flow
	{Key: "operating_activities", Labels: labels("Operating Activities", "Actividades de Operación"), IsInflow: true, StatementType: models.StatementCashFlow, CategoryType: models.CategoryTypeSection, Group: "operating"},
	{Key: "customer_receipts", Labels: labels("Receipts from Customers", "Cobros a Clientes"), IsInflow: true, StatementType: models.StatementCashFlow, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: "supplier_payments", Labels: labels("Payments to Suppliers", "Pagos a Proveedores"), IsInflow: false, StatementType: models.StatementCashFlow, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: "employee_payments", Labels: labels("Payments to Employees", "Pagos a Empleados"), IsInflow: false, StatementType: models.StatementCashFlow, CategoryType: models.CategoryTypeAccount, Group: "operating"},
	{Key: "investing_activities", Labels: labels("Investing Activities", "Actividades de Inversión"), IsInflow: false, StatementType: models.StatementCashFlow, CategoryType: models.CategoryTypeSection, Group: "investing"},
	{Key: "capital_expenditures", Labels: labels("Capital Expenditures", "Inversiones de Capital"), IsInflow: false, StatementType: models.StatementCashFlow, CategoryType: models.CategoryTypeAccount, Group: "investing"},
	{Key: "financing_activities", Labels: labels("Financing Activities", "Actividades de Financiamiento"), IsInflow: true, StatementType: models.StatementCashFlow, CategoryType: models.CategoryTypeSection, Group: "financing"},
	{Key: "loan_proceeds", Labels: labels("Loan Proceeds", "Préstamos Recibidos"), IsInflow: true, StatementType: models.StatementCashFlow, CategoryType: models.CategoryTypeAccount, Group: "financing"},
	{Key: "loan_payments", Labels: labels("Loan Payments", "Pagos de Préstamos"), IsInflow: false, StatementType: models.StatementCashFlow, CategoryType: models.CategoryTypeAccount, Group: "financing"},
	{Key: "dividends_paid", Labels: labels("Dividends Paid", "Dividendos Pagados"), IsInflow: false, StatementType: models.StatementCashFlow, CategoryType: models.CategoryTypeAccount, Group: "financing"},
	{Key: "beginning_balance", Labels: labels("Beginning Balance", "Saldo Inicial"), IsInflow: true, StatementType: models.StatementCashFlow, CategoryType: models.CategoryTypeTotal, Group: "balance"},
	{Key: "net_cash_flow", Labels: labels("Net Cash Flow", "Flujo Neto de Efectivo"), IsInflow: true, StatementType: models.StatementCashFlow, CategoryType: models.CategoryTypeTotal, Group: "balance"},
	{Key: "ending_balance", Labels: labels("Ending Balance", "Saldo Final"), IsInflow: true, StatementType: models.StatementCashFlow, CategoryType: models.CategoryTypeTotal, Group: "balance"},
}
