package mapper

import "warren/finparse/internal/models"

// localeKeywords holds the per-locale dictionaries the mapper scores
// against, keyed by category key. The category's own locale label is
// always scored in addition.
var localeKeywords = map[string]map[string][]string{
	models.LocaleEnglish: {
		"sales_revenue":             {"sales", "product sales", "net sales", "merchandise"},
		"service_revenue":           {"services", "service fees", "consulting revenue", "subscriptions"},
		"interest_income":           {"interest income", "interest earned", "finance income"},
		"cost_of_sales":             {"cost of sales", "cost of goods sold", "cogs", "direct costs"},
		"operating_expense":         {"operating expense", "opex", "overhead"},
		"personnel_costs":           {"salaries", "wages", "payroll", "staff costs", "benefits"},
		"salaries_wages":            {"salaries and wages", "salaries", "wages"},
		"rent_expense":              {"rent", "lease", "office rent"},
		"utilities_expense":         {"utilities", "electricity", "water", "gas", "internet"},
		"marketing_expense":         {"marketing", "advertising", "promotion", "ads"},
		"professional_services":     {"legal fees", "accounting fees", "consulting", "professional fees"},
		"insurance_expense":         {"insurance", "premiums"},
		"travel_expense":            {"travel", "airfare", "lodging", "mileage"},
		"office_supplies":           {"office supplies", "stationery", "supplies"},
		"depreciation_amortization": {"depreciation", "amortization"},
		"interest_expense":          {"interest expense", "interest paid", "loan interest"},
		"tax_expense":               {"taxes", "income tax", "tax provision"},
		"cash_equivalents":          {"cash", "bank", "petty cash", "cash equivalents"},
		"accounts_receivable":       {"accounts receivable", "receivables", "debtors"},
		"inventory":                 {"inventory", "stock", "merchandise inventory"},
		"fixed_assets":              {"fixed assets", "property", "equipment", "machinery"},
		"accounts_payable":          {"accounts payable", "payables", "creditors"},
		"short_term_debt":           {"short term debt", "line of credit", "current loans"},
		"long_term_debt":            {"long term debt", "mortgage", "bonds payable"},
		"equity":                    {"equity", "capital", "share capital"},
		"retained_earnings":         {"retained earnings", "accumulated earnings"},
		"customer_receipts":         {"customer receipts", "collections", "cash received"},
		"supplier_payments":         {"supplier payments", "payments to suppliers", "vendor payments"},
		"employee_payments":         {"payroll payments", "payments to employees"},
		"capital_expenditures":      {"capital expenditures", "capex", "asset purchases"},
		"loan_proceeds":             {"loan proceeds", "borrowings", "new loans"},
		"loan_payments":             {"loan payments", "principal payments", "debt repayment"},
		"dividends_paid":            {"dividends", "distributions"},
	},
	models.LocaleSpanish: {
		"sales_revenue":             {"ventas", "ingresos por ventas", "ventas netas"},
		"service_revenue":           {"servicios", "ingresos por servicios", "honorarios cobrados"},
		"interest_income":           {"intereses ganados", "ingresos financieros", "productos financieros"},
		"cost_of_sales":             {"costo de ventas", "costo de lo vendido", "costos directos"},
		"operating_expense":         {"gastos operativos", "gastos de operacion"},
		"personnel_costs":           {"sueldos", "salarios", "nomina", "prestaciones"},
		"salaries_wages":            {"sueldos y salarios", "sueldos", "salarios"},
		"rent_expense":              {"renta", "alquiler", "arrendamiento"},
		"utilities_expense":         {"servicios publicos", "luz", "agua", "electricidad", "internet"},
		"marketing_expense":         {"publicidad", "mercadotecnia", "promocion"},
		"professional_services":     {"honorarios", "servicios profesionales", "asesoria"},
		"insurance_expense":         {"seguros", "primas de seguro"},
		"travel_expense":            {"viajes", "viaticos", "hospedaje"},
		"office_supplies":           {"papeleria", "articulos de oficina", "utiles"},
		"depreciation_amortization": {"depreciacion", "amortizacion"},
		"interest_expense":          {"intereses pagados", "gastos financieros"},
		"tax_expense":               {"impuestos", "isr", "provision de impuestos"},
		"cash_equivalents":          {"caja", "bancos", "efectivo"},
		"accounts_receivable":       {"cuentas por cobrar", "clientes", "deudores"},
		"inventory":                 {"inventario", "almacen", "existencias"},
		"fixed_assets":              {"activo fijo", "propiedades", "maquinaria", "equipo"},
		"accounts_payable":          {"cuentas por pagar", "proveedores", "acreedores"},
		"short_term_debt":           {"deuda a corto plazo", "prestamos corto plazo"},
		"long_term_debt":            {"deuda a largo plazo", "hipoteca"},
		"equity":                    {"capital", "capital social", "patrimonio"},
		"retained_earnings":         {"utilidades retenidas", "resultados acumulados"},
		"customer_receipts":         {"cobros a clientes", "cobranza", "recaudacion"},
		"supplier_payments":         {"pagos a proveedores"},
		"employee_payments":         {"pagos a empleados", "pago de nomina"},
		"capital_expenditures":      {"inversion en activos", "compra de activos"},
		"loan_proceeds":             {"prestamos recibidos", "financiamiento recibido"},
		"loan_payments":             {"pago de prestamos", "amortizacion de deuda"},
		"dividends_paid":            {"dividendos", "dividendos pagados"},
	},
}
