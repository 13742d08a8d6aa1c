package fallback

// keywordRule holds the match and exclusion vocabulary for one taxonomy
// category. Keywords are lowercase; matching is case-insensitive against
// the account name. An exclusion hit zeroes the category entirely.
type keywordRule struct {
	keywords   []string
	exclusions []string
}

// keywordRules covers the default taxonomy in English and Spanish.
// Ordering inside a slice does not matter; scoring is tiered by match
// kind, not position.
var keywordRules = map[string]keywordRule{
	"sales_revenue": {
		keywords:   []string{"sales", "revenue", "ventas", "ingresos por ventas", "net sales", "product revenue"},
		exclusions: []string{"cost of", "costo de", "return", "devolucion"},
	},
	"service_revenue": {
		keywords:   []string{"service revenue", "services", "servicios", "consulting", "consultoria", "honorarios cobrados", "subscription"},
		exclusions: []string{"professional services expense", "cost"},
	},
	"interest_income": {
		keywords:   []string{"interest income", "intereses ganados", "ingresos financieros", "productos financieros"},
		exclusions: []string{"expense", "gasto"},
	},
	"cost_of_sales": {
		keywords: []string{"cost of sales", "cost of goods", "cogs", "costo de ventas", "costo de lo vendido", "direct costs", "costos directos"},
	},
	"personnel_costs": {
		keywords: []string{"personnel", "payroll", "nomina", "staff costs", "costos de personal", "benefits", "prestaciones"},
	},
	"salaries_wages": {
		keywords: []string{"salaries", "salary", "wages", "sueldos", "salarios", "sueldos y salarios", "remuneraciones"},
	},
	"rent_expense": {
		keywords: []string{"rent", "lease", "renta", "alquiler", "arrendamiento"},
	},
	"utilities_expense": {
		keywords: []string{"utilities", "electricity", "water", "luz", "agua", "servicios publicos", "energia", "internet", "telefono", "phone"},
	},
	"marketing_expense": {
		keywords: []string{"marketing", "advertising", "publicidad", "mercadotecnia", "promocion", "ads"},
	},
	"professional_services": {
		keywords: []string{"professional services", "legal", "accounting fees", "audit", "honorarios", "asesoria", "contabilidad"},
	},
	"insurance_expense": {
		keywords: []string{"insurance", "seguros", "primas de seguros"},
	},
	"travel_expense": {
		keywords: []string{"travel", "viajes", "viaticos", "lodging", "hospedaje", "entertainment", "representacion"},
	},
	"office_supplies": {
		keywords: []string{"office supplies", "supplies", "papeleria", "material de oficina", "utiles"},
	},
	"depreciation_amortization": {
		keywords: []string{"depreciation", "amortization", "depreciacion", "amortizacion"},
	},
	"interest_expense": {
		keywords:   []string{"interest expense", "intereses pagados", "gastos financieros", "bank charges", "comisiones bancarias"},
		exclusions: []string{"income", "ganados"},
	},
	"tax_expense": {
		keywords: []string{"tax", "taxes", "impuestos", "isr", "iva"},
	},
	"accounts_receivable": {
		keywords: []string{"accounts receivable", "receivable", "cuentas por cobrar", "clientes"},
	},
	"accounts_payable": {
		keywords: []string{"accounts payable", "payable", "cuentas por pagar", "proveedores"},
	},
	"inventory": {
		keywords: []string{"inventory", "inventario", "inventarios", "existencias"},
	},
	"cash_equivalents": {
		keywords: []string{"cash", "efectivo", "bancos", "caja", "equivalentes de efectivo"},
	},
	"fixed_assets": {
		keywords: []string{"fixed assets", "property", "equipment", "activo fijo", "activos fijos", "maquinaria", "mobiliario"},
	},
	"long_term_debt": {
		keywords: []string{"long-term debt", "long term debt", "deuda a largo plazo", "creditos bancarios"},
	},
	"equity": {
		keywords: []string{"equity", "capital", "capital contable", "capital social"},
	},
	"retained_earnings": {
		keywords: []string{"retained earnings", "utilidades retenidas", "resultados acumulados"},
	},
	"customer_receipts": {
		keywords: []string{"receipts from customers", "collections", "cobros", "cobranza", "customer receipts"},
	},
	"supplier_payments": {
		keywords: []string{"payments to suppliers", "supplier payments", "pagos a proveedores"},
	},
	"employee_payments": {
		keywords: []string{"payments to employees", "pagos a empleados", "pago de nomina"},
	},
	"capital_expenditures": {
		keywords: []string{"capital expenditures", "capex", "equipment purchase", "compra de equipo", "inversiones de capital"},
	},
	"loan_proceeds": {
		keywords:   []string{"loan proceeds", "prestamos recibidos", "loan received", "financiamiento recibido"},
		exclusions: []string{"payment", "pago"},
	},
	"loan_payments": {
		keywords: []string{"loan payment", "loan payments", "pagos de prestamos", "pago de credito", "debt service"},
	},
	"dividends_paid": {
		keywords: []string{"dividends", "dividendos"},
	},
}

// genericExpenseVocabulary is the last keyword resort before defaulting:
// words that say "this is some expense" without saying which.
var genericExpenseVocabulary = []string{
	"expense", "expenses", "gasto", "gastos", "cost", "costs", "costo", "costos", "fee", "fees", "cargo", "cargos",
}
