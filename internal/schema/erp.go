package schema

import (
	"github.com/Lumos-Labs-HQ/seedcraft/internal/types"
)

// Column constructors. The schema below is declared once, statically; these
// keep the table literals close to the shape of the underlying DDL.

func uuidPK(name string) types.ColumnSpec {
	return types.ColumnSpec{Name: name, Type: types.TypeUUID, IsPrimary: true}
}

func uuidCol(name string, nullable bool) types.ColumnSpec {
	return types.ColumnSpec{Name: name, Type: types.TypeUUID, Nullable: nullable}
}

func fkCol(name, table, column string, nullable bool) types.ColumnSpec {
	return types.ColumnSpec{
		Name:             name,
		Type:             types.TypeUUID,
		Nullable:         nullable,
		ForeignKeyTable:  table,
		ForeignKeyColumn: column,
	}
}

func strCol(name string, length int, nullable bool) types.ColumnSpec {
	return types.ColumnSpec{Name: name, Type: types.TypeString, Length: length, Nullable: nullable}
}

func textCol(name string) types.ColumnSpec {
	return types.ColumnSpec{Name: name, Type: types.TypeText, Nullable: true}
}

func boolCol(name string) types.ColumnSpec {
	return types.ColumnSpec{Name: name, Type: types.TypeBoolean, Nullable: true}
}

func intCol(name string, nullable bool) types.ColumnSpec {
	return types.ColumnSpec{Name: name, Type: types.TypeInteger, Nullable: nullable}
}

func dateCol(name string, nullable bool) types.ColumnSpec {
	return types.ColumnSpec{Name: name, Type: types.TypeDate, Nullable: nullable}
}

func tsCol(name string, nullable bool) types.ColumnSpec {
	return types.ColumnSpec{Name: name, Type: types.TypeTimestamp, Nullable: nullable}
}

func decCol(name string, scale int, nullable bool) types.ColumnSpec {
	return types.ColumnSpec{Name: name, Type: types.TypeDecimal, Scale: scale, Nullable: nullable}
}

// Tables returns the full ERP schema in dependency order: tables are grouped
// in levels so that every foreign key points at an earlier entry. The
// ordering is authored alongside the schema and trusted as-is; Sort derives
// the same property from the FK graph when no authored order is available.
func Tables() []types.TableSchema {
	return []types.TableSchema{
		// First level - no foreign key dependencies
		{
			Name: "companies",
			Columns: []types.ColumnSpec{
				uuidPK("company_id"),
				strCol("name", 255, false),
				strCol("cin", 21, true),
				strCol("pan", 10, true),
				tsCol("created_at", true),
			},
		},
		{
			Name: "roles",
			Columns: []types.ColumnSpec{
				uuidPK("role_id"),
				fkCol("company_id", "companies", "company_id", false),
				strCol("role_name", 50, false),
				textCol("description"),
				tsCol("created_at", true),
			},
		},
		// Second level
		{
			Name: "addresses",
			Columns: []types.ColumnSpec{
				uuidPK("address_id"),
				fkCol("company_id", "companies", "company_id", false),
				strCol("address_line1", 255, false),
				strCol("address_line2", 255, true),
				strCol("city", 100, false),
				strCol("state", 100, false),
				strCol("country", 100, false),
				strCol("pin_code", 10, false),
				decCol("latitude", 6, true),
				decCol("longitude", 6, true),
				tsCol("created_at", true),
				tsCol("updated_at", true),
			},
		},
		{
			Name: "user_company_roles",
			Columns: []types.ColumnSpec{
				uuidPK("erp_user_id"),
				fkCol("company_id", "companies", "company_id", false),
				fkCol("role_id", "roles", "role_id", false),
				tsCol("created_at", true),
				tsCol("updated_at", true),
			},
		},
		{
			Name: "departments",
			Columns: []types.ColumnSpec{
				uuidPK("department_id"),
				fkCol("company_id", "companies", "company_id", false),
				strCol("name", 100, false),
				textCol("description"),
				tsCol("created_at", true),
			},
		},
		{
			Name: "accounts",
			Columns: []types.ColumnSpec{
				uuidPK("account_id"),
				fkCol("company_id", "companies", "company_id", false),
				strCol("code", 20, false),
				strCol("name", 255, false),
				strCol("type", 20, true),
				fkCol("parent_account_id", "accounts", "account_id", true),
				tsCol("created_at", true),
				boolCol("is_active"),
			},
		},
		{
			Name: "customers",
			Columns: []types.ColumnSpec{
				uuidPK("customer_id"),
				fkCol("company_id", "companies", "company_id", false),
				strCol("name", 255, false),
				strCol("gstin", 15, true),
				textCol("address"),
				strCol("city", 100, true),
				strCol("state", 100, true),
				strCol("country", 100, true),
				strCol("contact_person", 100, true),
				strCol("email", 255, true),
				strCol("phone", 20, true),
				decCol("credit_limit", 2, true),
				tsCol("created_at", true),
				boolCol("is_active"),
			},
		},
		{
			Name: "vendors",
			Columns: []types.ColumnSpec{
				uuidPK("vendor_id"),
				fkCol("company_id", "companies", "company_id", false),
				strCol("name", 255, false),
				strCol("gstin", 15, true),
				textCol("address"),
				strCol("city", 100, true),
				strCol("state", 100, true),
				strCol("country", 100, true),
				strCol("contact_person", 100, true),
				strCol("email", 255, true),
				strCol("phone", 20, true),
				decCol("credit_limit", 2, true),
				tsCol("created_at", true),
				boolCol("is_active"),
			},
		},
		{
			Name: "products",
			Columns: []types.ColumnSpec{
				uuidPK("product_id"),
				fkCol("company_id", "companies", "company_id", false),
				strCol("name", 255, false),
				strCol("sku", 100, true),
				strCol("hsn_code", 10, true),
				textCol("description"),
				strCol("unit", 20, true),
				decCol("sale_price", 2, true),
				decCol("purchase_price", 2, true),
				decCol("min_stock_level", 2, true),
				decCol("max_stock_level", 2, true),
				tsCol("created_at", true),
				boolCol("is_active"),
			},
		},
		{
			Name: "company_gstins",
			Columns: []types.ColumnSpec{
				uuidPK("gstin_id"),
				fkCol("company_id", "companies", "company_id", false),
				strCol("gstin", 15, false),
				fkCol("address_id", "addresses", "address_id", false),
				boolCol("is_primary"),
				boolCol("is_active"),
				tsCol("created_at", true),
				tsCol("updated_at", true),
			},
		},
		// Third level
		{
			Name: "transactions",
			Columns: []types.ColumnSpec{
				uuidPK("transaction_id"),
				fkCol("company_id", "companies", "company_id", false),
				dateCol("date", false),
				fkCol("account_id", "accounts", "account_id", false),
				decCol("amount", 2, false),
				strCol("type", 10, true),
				textCol("description"),
				strCol("reference_type", 50, true),
				uuidCol("reference_id", true),
				uuidCol("created_by", true),
				tsCol("created_at", true),
			},
		},
		{
			Name: "inventory",
			Columns: []types.ColumnSpec{
				uuidPK("inventory_id"),
				fkCol("company_id", "companies", "company_id", false),
				fkCol("product_id", "products", "product_id", false),
				fkCol("address_id", "addresses", "address_id", false),
				decCol("quantity", 2, true),
				tsCol("last_updated", true),
			},
		},
		{
			Name: "sales_orders",
			Columns: []types.ColumnSpec{
				uuidPK("order_id"),
				fkCol("company_id", "companies", "company_id", false),
				fkCol("customer_id", "customers", "customer_id", false),
				dateCol("order_date", false),
				dateCol("delivery_date", true),
				strCol("status", 50, true),
				decCol("subtotal", 2, true),
				decCol("cgst_amount", 2, true),
				decCol("sgst_amount", 2, true),
				decCol("igst_amount", 2, true),
				decCol("total_amount", 2, true),
				textCol("notes"),
				uuidCol("created_by", true),
				tsCol("created_at", true),
			},
		},
		{
			Name: "purchase_orders",
			Columns: []types.ColumnSpec{
				uuidPK("po_id"),
				fkCol("company_id", "companies", "company_id", false),
				fkCol("vendor_id", "vendors", "vendor_id", false),
				dateCol("po_date", false),
				dateCol("expected_date", true),
				strCol("status", 50, true),
				decCol("subtotal", 2, true),
				decCol("cgst_amount", 2, true),
				decCol("sgst_amount", 2, true),
				decCol("igst_amount", 2, true),
				decCol("total_amount", 2, true),
				textCol("notes"),
				uuidCol("created_by", true),
				tsCol("created_at", true),
			},
		},
		{
			Name: "fixed_assets",
			Columns: []types.ColumnSpec{
				uuidPK("asset_id"),
				fkCol("company_id", "companies", "company_id", false),
				strCol("name", 255, false),
				strCol("asset_number", 50, true),
				dateCol("purchase_date", true),
				decCol("purchase_value", 2, true),
				fkCol("vendor_id", "vendors", "vendor_id", true),
				fkCol("address_id", "addresses", "address_id", true),
				strCol("asset_class", 100, true),
				intCol("useful_life_years", true),
				strCol("depreciation_method", 50, true),
				decCol("salvage_value", 2, true),
				decCol("current_value", 2, true),
				dateCol("last_depreciation_date", true),
				decCol("depreciation_rate", 2, true),
				strCol("status", 50, true),
				tsCol("created_at", true),
			},
		},
		{
			Name: "employees",
			Columns: []types.ColumnSpec{
				uuidPK("employee_id"),
				fkCol("company_id", "companies", "company_id", false),
				fkCol("department_id", "departments", "department_id", true),
				strCol("employee_code", 50, true),
				strCol("name", 255, false),
				strCol("pan", 10, true),
				strCol("pf_number", 20, true),
				strCol("esi_number", 20, true),
				strCol("uan", 12, true),
				dateCol("doj", true),
				dateCol("dol", true),
				decCol("salary", 2, true),
				strCol("email", 255, true),
				strCol("phone", 20, true),
				textCol("address"),
				strCol("city", 100, true),
				strCol("state", 100, true),
				strCol("country", 100, true),
				strCol("status", 20, true),
				tsCol("created_at", true),
			},
		},
		// Fourth level
		{
			Name: "sales_order_items",
			Columns: []types.ColumnSpec{
				uuidPK("item_id"),
				fkCol("company_id", "companies", "company_id", false),
				fkCol("order_id", "sales_orders", "order_id", false),
				fkCol("product_id", "products", "product_id", false),
				decCol("quantity", 2, false),
				decCol("unit_price", 2, false),
				decCol("gst_rate", 2, true),
				decCol("cgst_rate", 2, true),
				decCol("sgst_rate", 2, true),
				decCol("igst_rate", 2, true),
				decCol("cgst_amount", 2, true),
				decCol("sgst_amount", 2, true),
				decCol("igst_amount", 2, true),
				decCol("total_amount", 2, true),
			},
		},
		{
			Name: "purchase_order_items",
			Columns: []types.ColumnSpec{
				uuidPK("item_id"),
				fkCol("company_id", "companies", "company_id", false),
				fkCol("po_id", "purchase_orders", "po_id", false),
				fkCol("product_id", "products", "product_id", false),
				decCol("quantity", 2, false),
				decCol("unit_price", 2, false),
				decCol("gst_rate", 2, true),
				decCol("cgst_rate", 2, true),
				decCol("sgst_rate", 2, true),
				decCol("igst_rate", 2, true),
				decCol("cgst_amount", 2, true),
				decCol("sgst_amount", 2, true),
				decCol("igst_amount", 2, true),
				decCol("total_amount", 2, true),
			},
		},
		{
			Name: "invoices",
			Columns: []types.ColumnSpec{
				uuidPK("invoice_id"),
				fkCol("company_id", "companies", "company_id", false),
				fkCol("order_id", "sales_orders", "order_id", false),
				fkCol("customer_id", "customers", "customer_id", false),
				dateCol("invoice_date", false),
				dateCol("due_date", false),
				decCol("amount", 2, false),
				decCol("paid_amount", 2, true),
				strCol("status", 20, true),
				tsCol("created_at", true),
			},
		},
		{
			Name: "payables",
			Columns: []types.ColumnSpec{
				uuidPK("payable_id"),
				fkCol("company_id", "companies", "company_id", false),
				fkCol("po_id", "purchase_orders", "po_id", false),
				fkCol("vendor_id", "vendors", "vendor_id", false),
				dateCol("invoice_date", false),
				dateCol("due_date", false),
				decCol("amount", 2, false),
				decCol("paid_amount", 2, true),
				strCol("status", 20, true),
				tsCol("created_at", true),
			},
		},
		{
			Name: "payroll",
			Columns: []types.ColumnSpec{
				uuidPK("payroll_id"),
				fkCol("company_id", "companies", "company_id", false),
				fkCol("employee_id", "employees", "employee_id", false),
				dateCol("pay_period", false),
				decCol("basic_salary", 2, true),
				decCol("hra", 2, true),
				decCol("conveyance", 2, true),
				decCol("medical_allowance", 2, true),
				decCol("special_allowance", 2, true),
				decCol("gross_salary", 2, true),
				decCol("pf_deduction", 2, true),
				decCol("esi_deduction", 2, true),
				decCol("tds_deduction", 2, true),
				decCol("other_deductions", 2, true),
				decCol("net_salary", 2, true),
				strCol("payment_status", 20, true),
				dateCol("payment_date", true),
				tsCol("created_at", true),
			},
		},
		{
			Name: "audit_logs",
			Columns: []types.ColumnSpec{
				uuidPK("log_id"),
				fkCol("company_id", "companies", "company_id", false),
				uuidCol("erp_user_id", true),
				strCol("action", 255, true),
				strCol("table_name", 100, true),
				uuidCol("record_id", true),
				textCol("old_values"),
				textCol("new_values"),
				strCol("ip_address", 45, true),
				strCol("user_agent", 255, true),
				tsCol("created_at", true),
			},
		},
		{
			Name: "subscriptions",
			Columns: []types.ColumnSpec{
				uuidPK("subscription_id"),
				fkCol("company_id", "companies", "company_id", false),
				uuidCol("user_id", false),
				strCol("plan_type", 50, false),
				tsCol("start_date", true),
				tsCol("end_date", true),
				boolCol("is_active"),
				decCol("price_per_user_per_month", 2, false),
				intCol("total_users", false),
				decCol("total_amount", 2, false),
				strCol("payment_status", 50, true),
				strCol("razorpay_payment_id", 255, true),
				tsCol("trial_start_date", true),
				tsCol("trial_end_date", true),
				boolCol("is_trial_active"),
				tsCol("created_at", true),
				tsCol("updated_at", true),
			},
		},
		{
			Name: "payments",
			Columns: []types.ColumnSpec{
				uuidPK("payment_id"),
				fkCol("subscription_id", "subscriptions", "subscription_id", false),
				decCol("amount", 2, false),
				tsCol("payment_date", true),
				strCol("status", 50, true),
				strCol("razorpay_order_id", 255, true),
				strCol("razorpay_payment_id", 255, true),
				tsCol("created_at", true),
			},
		},
		{
			Name: "email_verifications",
			Columns: []types.ColumnSpec{
				uuidPK("verification_id"),
				uuidCol("user_id", false),
				strCol("email", 255, false),
				strCol("otp", 6, false),
				boolCol("is_verified"),
				tsCol("created_at", true),
				tsCol("expires_at", false),
			},
		},
		{
			Name: "phone_verifications",
			Columns: []types.ColumnSpec{
				uuidPK("verification_id"),
				uuidCol("user_id", false),
				strCol("phone_number", 20, false),
				strCol("otp", 6, false),
				boolCol("is_verified"),
				tsCol("created_at", true),
				tsCol("expires_at", false),
			},
		},
		{
			Name: "file_exports",
			Columns: []types.ColumnSpec{
				uuidPK("export_id"),
				fkCol("company_id", "companies", "company_id", false),
				uuidCol("user_id", false),
				strCol("user_email", 255, true),
				strCol("file_type", 10, false),
				strCol("status", 20, true),
				strCol("file_path", 255, true),
				tsCol("requested_at", true),
				tsCol("completed_at", true),
				boolCol("email_sent"),
			},
		},
	}
}
