package catalog

import "github.com/apache/arrow-go/v18/arrow"

// tpcdsTables lists the TPC-DS tables in conversion order.
var tpcdsTables = []string{
	"call_center",
	"catalog_page",
	"catalog_returns",
	"catalog_sales",
	"customer",
	"customer_address",
	"customer_demographics",
	"date_dim",
	"household_demographics",
	"income_band",
	"inventory",
	"item",
	"promotion",
	"reason",
	"ship_mode",
	"store",
	"store_returns",
	"store_sales",
	"time_dim",
	"warehouse",
	"web_page",
	"web_returns",
	"web_sales",
	"web_site",
}

// TPCDS is the TPC-DS table catalog. Raw dumps are dsdgen ".dat" files,
// pipe-delimited with a trailing delimiter on every record.
type TPCDS struct {
	schemas map[string]*arrow.Schema
}

// NewTPCDS returns the TPC-DS catalog.
func NewTPCDS() *TPCDS {
	return &TPCDS{schemas: tpcdsSchemas()}
}

// Name returns "tpcds".
func (b *TPCDS) Name() string { return "tpcds" }

// TableNames returns the TPC-DS tables in conversion order.
func (b *TPCDS) TableNames() []string { return tpcdsTables }

// TableExt returns "dat", the dsdgen output extension.
func (b *TPCDS) TableExt() string { return "dat" }

// TerminatedRecords reports true: dsdgen terminates every record with '|'.
func (b *TPCDS) TerminatedRecords() bool { return true }

// Schema returns the read schema for a TPC-DS table.
func (b *TPCDS) Schema(table string) (*arrow.Schema, error) {
	return schemaFor(b.Name(), b.schemas, table)
}

func tpcdsSchemas() map[string]*arrow.Schema {
	return map[string]*arrow.Schema{
		"call_center": schema(
			col("cc_call_center_sk", typeInt32),
			col("cc_call_center_id", typeUtf8),
			col("cc_rec_start_date", typeDate32),
			col("cc_rec_end_date", typeDate32),
			col("cc_closed_date_sk", typeInt32),
			col("cc_open_date_sk", typeInt32),
			col("cc_name", typeUtf8),
			col("cc_class", typeUtf8),
			col("cc_employees", typeInt32),
			col("cc_sq_ft", typeInt32),
			col("cc_hours", typeUtf8),
			col("cc_manager", typeUtf8),
			col("cc_mkt_id", typeInt32),
			col("cc_mkt_class", typeUtf8),
			col("cc_mkt_desc", typeUtf8),
			col("cc_market_manager", typeUtf8),
			col("cc_division", typeInt32),
			col("cc_division_name", typeUtf8),
			col("cc_company", typeInt32),
			col("cc_company_name", typeUtf8),
			col("cc_street_number", typeUtf8),
			col("cc_street_name", typeUtf8),
			col("cc_street_type", typeUtf8),
			col("cc_suite_number", typeUtf8),
			col("cc_city", typeUtf8),
			col("cc_county", typeUtf8),
			col("cc_state", typeUtf8),
			col("cc_zip", typeUtf8),
			col("cc_country", typeUtf8),
			col("cc_gmt_offset", typeFloat),
			col("cc_tax_percentage", typeFloat),
		),
		"catalog_page": schema(
			col("cp_catalog_page_sk", typeInt32),
			col("cp_catalog_page_id", typeUtf8),
			col("cp_start_date_sk", typeInt32),
			col("cp_end_date_sk", typeInt32),
			col("cp_department", typeUtf8),
			col("cp_catalog_number", typeInt32),
			col("cp_catalog_page_number", typeInt32),
			col("cp_description", typeUtf8),
			col("cp_type", typeUtf8),
		),
		"catalog_returns": schema(
			col("cr_returned_date_sk", typeInt32),
			col("cr_returned_time_sk", typeInt32),
			col("cr_item_sk", typeInt32),
			col("cr_refunded_customer_sk", typeInt32),
			col("cr_refunded_cdemo_sk", typeInt32),
			col("cr_refunded_hdemo_sk", typeInt32),
			col("cr_refunded_addr_sk", typeInt32),
			col("cr_returning_customer_sk", typeInt32),
			col("cr_returning_cdemo_sk", typeInt32),
			col("cr_returning_hdemo_sk", typeInt32),
			col("cr_returning_addr_sk", typeInt32),
			col("cr_call_center_sk", typeInt32),
			col("cr_catalog_page_sk", typeInt32),
			col("cr_ship_mode_sk", typeInt32),
			col("cr_warehouse_sk", typeInt32),
			col("cr_reason_sk", typeInt32),
			col("cr_order_number", typeInt64),
			col("cr_return_quantity", typeInt32),
			col("cr_return_amount", typeFloat),
			col("cr_return_tax", typeFloat),
			col("cr_return_amt_inc_tax", typeFloat),
			col("cr_fee", typeFloat),
			col("cr_return_ship_cost", typeFloat),
			col("cr_refunded_cash", typeFloat),
			col("cr_reversed_charge", typeFloat),
			col("cr_store_credit", typeFloat),
			col("cr_net_loss", typeFloat),
		),
		"catalog_sales": schema(
			col("cs_sold_date_sk", typeInt32),
			col("cs_sold_time_sk", typeInt32),
			col("cs_ship_date_sk", typeInt32),
			col("cs_bill_customer_sk", typeInt32),
			col("cs_bill_cdemo_sk", typeInt32),
			col("cs_bill_hdemo_sk", typeInt32),
			col("cs_bill_addr_sk", typeInt32),
			col("cs_ship_customer_sk", typeInt32),
			col("cs_ship_cdemo_sk", typeInt32),
			col("cs_ship_hdemo_sk", typeInt32),
			col("cs_ship_addr_sk", typeInt32),
			col("cs_call_center_sk", typeInt32),
			col("cs_catalog_page_sk", typeInt32),
			col("cs_ship_mode_sk", typeInt32),
			col("cs_warehouse_sk", typeInt32),
			col("cs_item_sk", typeInt32),
			col("cs_promo_sk", typeInt32),
			col("cs_order_number", typeInt64),
			col("cs_quantity", typeInt32),
			col("cs_wholesale_cost", typeFloat),
			col("cs_list_price", typeFloat),
			col("cs_sales_price", typeFloat),
			col("cs_ext_discount_amt", typeFloat),
			col("cs_ext_sales_price", typeFloat),
			col("cs_ext_wholesale_cost", typeFloat),
			col("cs_ext_list_price", typeFloat),
			col("cs_ext_tax", typeFloat),
			col("cs_coupon_amt", typeFloat),
			col("cs_ext_ship_cost", typeFloat),
			col("cs_net_paid", typeFloat),
			col("cs_net_paid_inc_tax", typeFloat),
			col("cs_net_paid_inc_ship", typeFloat),
			col("cs_net_paid_inc_ship_tax", typeFloat),
			col("cs_net_profit", typeFloat),
		),
		"customer": schema(
			col("c_customer_sk", typeInt32),
			col("c_customer_id", typeUtf8),
			col("c_current_cdemo_sk", typeInt32),
			col("c_current_hdemo_sk", typeInt32),
			col("c_current_addr_sk", typeInt32),
			col("c_first_shipto_date_sk", typeInt32),
			col("c_first_sales_date_sk", typeInt32),
			col("c_salutation", typeUtf8),
			col("c_first_name", typeUtf8),
			col("c_last_name", typeUtf8),
			col("c_preferred_cust_flag", typeUtf8),
			col("c_birth_day", typeInt32),
			col("c_birth_month", typeInt32),
			col("c_birth_year", typeInt32),
			col("c_birth_country", typeUtf8),
			col("c_login", typeUtf8),
			col("c_email_address", typeUtf8),
			col("c_last_review_date_sk", typeInt32),
		),
		"customer_address": schema(
			col("ca_address_sk", typeInt32),
			col("ca_address_id", typeUtf8),
			col("ca_street_number", typeUtf8),
			col("ca_street_name", typeUtf8),
			col("ca_street_type", typeUtf8),
			col("ca_suite_number", typeUtf8),
			col("ca_city", typeUtf8),
			col("ca_county", typeUtf8),
			col("ca_state", typeUtf8),
			col("ca_zip", typeUtf8),
			col("ca_country", typeUtf8),
			col("ca_gmt_offset", typeFloat),
			col("ca_location_type", typeUtf8),
		),
		"customer_demographics": schema(
			col("cd_demo_sk", typeInt32),
			col("cd_gender", typeUtf8),
			col("cd_marital_status", typeUtf8),
			col("cd_education_status", typeUtf8),
			col("cd_purchase_estimate", typeInt32),
			col("cd_credit_rating", typeUtf8),
			col("cd_dep_count", typeInt32),
			col("cd_dep_employed_count", typeInt32),
			col("cd_dep_college_count", typeInt32),
		),
		"date_dim": schema(
			col("d_date_sk", typeInt32),
			col("d_date_id", typeUtf8),
			col("d_date", typeDate32),
			col("d_month_seq", typeInt32),
			col("d_week_seq", typeInt32),
			col("d_quarter_seq", typeInt32),
			col("d_year", typeInt32),
			col("d_dow", typeInt32),
			col("d_moy", typeInt32),
			col("d_dom", typeInt32),
			col("d_qoy", typeInt32),
			col("d_fy_year", typeInt32),
			col("d_fy_quarter_seq", typeInt32),
			col("d_fy_week_seq", typeInt32),
			col("d_day_name", typeUtf8),
			col("d_quarter_name", typeUtf8),
			col("d_holiday", typeUtf8),
			col("d_weekend", typeUtf8),
			col("d_following_holiday", typeUtf8),
			col("d_first_dom", typeInt32),
			col("d_last_dom", typeInt32),
			col("d_same_day_ly", typeInt32),
			col("d_same_day_lq", typeInt32),
			col("d_current_day", typeUtf8),
			col("d_current_week", typeUtf8),
			col("d_current_month", typeUtf8),
			col("d_current_quarter", typeUtf8),
			col("d_current_year", typeUtf8),
		),
		"household_demographics": schema(
			col("hd_demo_sk", typeInt32),
			col("hd_income_band_sk", typeInt32),
			col("hd_buy_potential", typeUtf8),
			col("hd_dep_count", typeInt32),
			col("hd_vehicle_count", typeInt32),
		),
		"income_band": schema(
			col("ib_income_band_sk", typeInt32),
			col("ib_lower_bound", typeInt32),
			col("ib_upper_bound", typeInt32),
		),
		"inventory": schema(
			col("inv_date_sk", typeInt32),
			col("inv_item_sk", typeInt32),
			col("inv_warehouse_sk", typeInt32),
			col("inv_quantity_on_hand", typeInt32),
		),
		"item": schema(
			col("i_item_sk", typeInt32),
			col("i_item_id", typeUtf8),
			col("i_rec_start_date", typeDate32),
			col("i_rec_end_date", typeDate32),
			col("i_item_desc", typeUtf8),
			col("i_current_price", typeFloat),
			col("i_wholesale_cost", typeFloat),
			col("i_brand_id", typeInt32),
			col("i_brand", typeUtf8),
			col("i_class_id", typeInt32),
			col("i_class", typeUtf8),
			col("i_category_id", typeInt32),
			col("i_category", typeUtf8),
			col("i_manufact_id", typeInt32),
			col("i_manufact", typeUtf8),
			col("i_size", typeUtf8),
			col("i_formulation", typeUtf8),
			col("i_color", typeUtf8),
			col("i_units", typeUtf8),
			col("i_container", typeUtf8),
			col("i_manager_id", typeInt32),
			col("i_product_name", typeUtf8),
		),
		"promotion": schema(
			col("p_promo_sk", typeInt32),
			col("p_promo_id", typeUtf8),
			col("p_start_date_sk", typeInt32),
			col("p_end_date_sk", typeInt32),
			col("p_item_sk", typeInt32),
			col("p_cost", typeFloat),
			col("p_response_target", typeInt32),
			col("p_promo_name", typeUtf8),
			col("p_channel_dmail", typeUtf8),
			col("p_channel_email", typeUtf8),
			col("p_channel_catalog", typeUtf8),
			col("p_channel_tv", typeUtf8),
			col("p_channel_radio", typeUtf8),
			col("p_channel_press", typeUtf8),
			col("p_channel_event", typeUtf8),
			col("p_channel_demo", typeUtf8),
			col("p_channel_details", typeUtf8),
			col("p_purpose", typeUtf8),
			col("p_discount_active", typeUtf8),
		),
		"reason": schema(
			col("r_reason_sk", typeInt32),
			col("r_reason_id", typeUtf8),
			col("r_reason_desc", typeUtf8),
		),
		"ship_mode": schema(
			col("sm_ship_mode_sk", typeInt32),
			col("sm_ship_mode_id", typeUtf8),
			col("sm_type", typeUtf8),
			col("sm_code", typeUtf8),
			col("sm_carrier", typeUtf8),
			col("sm_contract", typeUtf8),
		),
		"store": schema(
			col("s_store_sk", typeInt32),
			col("s_store_id", typeUtf8),
			col("s_rec_start_date", typeDate32),
			col("s_rec_end_date", typeDate32),
			col("s_closed_date_sk", typeInt32),
			col("s_store_name", typeUtf8),
			col("s_number_employees", typeInt32),
			col("s_floor_space", typeInt32),
			col("s_hours", typeUtf8),
			col("s_manager", typeUtf8),
			col("s_market_id", typeInt32),
			col("s_geography_class", typeUtf8),
			col("s_market_desc", typeUtf8),
			col("s_market_manager", typeUtf8),
			col("s_division_id", typeInt32),
			col("s_division_name", typeUtf8),
			col("s_company_id", typeInt32),
			col("s_company_name", typeUtf8),
			col("s_street_number", typeUtf8),
			col("s_street_name", typeUtf8),
			col("s_street_type", typeUtf8),
			col("s_suite_number", typeUtf8),
			col("s_city", typeUtf8),
			col("s_county", typeUtf8),
			col("s_state", typeUtf8),
			col("s_zip", typeUtf8),
			col("s_country", typeUtf8),
			col("s_gmt_offset", typeFloat),
			col("s_tax_precentage", typeFloat),
		),
		"store_returns": schema(
			col("sr_returned_date_sk", typeInt32),
			col("sr_return_time_sk", typeInt32),
			col("sr_item_sk", typeInt32),
			col("sr_customer_sk", typeInt32),
			col("sr_cdemo_sk", typeInt32),
			col("sr_hdemo_sk", typeInt32),
			col("sr_addr_sk", typeInt32),
			col("sr_store_sk", typeInt32),
			col("sr_reason_sk", typeInt32),
			col("sr_ticket_number", typeInt64),
			col("sr_return_quantity", typeInt32),
			col("sr_return_amt", typeFloat),
			col("sr_return_tax", typeFloat),
			col("sr_return_amt_inc_tax", typeFloat),
			col("sr_fee", typeFloat),
			col("sr_return_ship_cost", typeFloat),
			col("sr_refunded_cash", typeFloat),
			col("sr_reversed_charge", typeFloat),
			col("sr_store_credit", typeFloat),
			col("sr_net_loss", typeFloat),
		),
		"store_sales": schema(
			col("ss_sold_date_sk", typeInt32),
			col("ss_sold_time_sk", typeInt32),
			col("ss_item_sk", typeInt32),
			col("ss_customer_sk", typeInt32),
			col("ss_cdemo_sk", typeInt32),
			col("ss_hdemo_sk", typeInt32),
			col("ss_addr_sk", typeInt32),
			col("ss_store_sk", typeInt32),
			col("ss_promo_sk", typeInt32),
			col("ss_ticket_number", typeInt64),
			col("ss_quantity", typeInt32),
			col("ss_wholesale_cost", typeFloat),
			col("ss_list_price", typeFloat),
			col("ss_sales_price", typeFloat),
			col("ss_ext_discount_amt", typeFloat),
			col("ss_ext_sales_price", typeFloat),
			col("ss_ext_wholesale_cost", typeFloat),
			col("ss_ext_list_price", typeFloat),
			col("ss_ext_tax", typeFloat),
			col("ss_coupon_amt", typeFloat),
			col("ss_net_paid", typeFloat),
			col("ss_net_paid_inc_tax", typeFloat),
			col("ss_net_profit", typeFloat),
		),
		"time_dim": schema(
			col("t_time_sk", typeInt32),
			col("t_time_id", typeUtf8),
			col("t_time", typeInt32),
			col("t_hour", typeInt32),
			col("t_minute", typeInt32),
			col("t_second", typeInt32),
			col("t_am_pm", typeUtf8),
			col("t_shift", typeUtf8),
			col("t_sub_shift", typeUtf8),
			col("t_meal_time", typeUtf8),
		),
		"warehouse": schema(
			col("w_warehouse_sk", typeInt32),
			col("w_warehouse_id", typeUtf8),
			col("w_warehouse_name", typeUtf8),
			col("w_warehouse_sq_ft", typeInt32),
			col("w_street_number", typeUtf8),
			col("w_street_name", typeUtf8),
			col("w_street_type", typeUtf8),
			col("w_suite_number", typeUtf8),
			col("w_city", typeUtf8),
			col("w_county", typeUtf8),
			col("w_state", typeUtf8),
			col("w_zip", typeUtf8),
			col("w_country", typeUtf8),
			col("w_gmt_offset", typeFloat),
		),
		"web_page": schema(
			col("wp_web_page_sk", typeInt32),
			col("wp_web_page_id", typeUtf8),
			col("wp_rec_start_date", typeDate32),
			col("wp_rec_end_date", typeDate32),
			col("wp_creation_date_sk", typeInt32),
			col("wp_access_date_sk", typeInt32),
			col("wp_autogen_flag", typeUtf8),
			col("wp_customer_sk", typeInt32),
			col("wp_url", typeUtf8),
			col("wp_type", typeUtf8),
			col("wp_char_count", typeInt32),
			col("wp_link_count", typeInt32),
			col("wp_image_count", typeInt32),
			col("wp_max_ad_count", typeInt32),
		),
		"web_returns": schema(
			col("wr_returned_date_sk", typeInt32),
			col("wr_returned_time_sk", typeInt32),
			col("wr_item_sk", typeInt32),
			col("wr_refunded_customer_sk", typeInt32),
			col("wr_refunded_cdemo_sk", typeInt32),
			col("wr_refunded_hdemo_sk", typeInt32),
			col("wr_refunded_addr_sk", typeInt32),
			col("wr_returning_customer_sk", typeInt32),
			col("wr_returning_cdemo_sk", typeInt32),
			col("wr_returning_hdemo_sk", typeInt32),
			col("wr_returning_addr_sk", typeInt32),
			col("wr_web_page_sk", typeInt32),
			col("wr_reason_sk", typeInt32),
			col("wr_order_number", typeInt64),
			col("wr_return_quantity", typeInt32),
			col("wr_return_amt", typeFloat),
			col("wr_return_tax", typeFloat),
			col("wr_return_amt_inc_tax", typeFloat),
			col("wr_fee", typeFloat),
			col("wr_return_ship_cost", typeFloat),
			col("wr_refunded_cash", typeFloat),
			col("wr_reversed_charge", typeFloat),
			col("wr_account_credit", typeFloat),
			col("wr_net_loss", typeFloat),
		),
		"web_sales": schema(
			col("ws_sold_date_sk", typeInt32),
			col("ws_sold_time_sk", typeInt32),
			col("ws_ship_date_sk", typeInt32),
			col("ws_item_sk", typeInt32),
			col("ws_bill_customer_sk", typeInt32),
			col("ws_bill_cdemo_sk", typeInt32),
			col("ws_bill_hdemo_sk", typeInt32),
			col("ws_bill_addr_sk", typeInt32),
			col("ws_ship_customer_sk", typeInt32),
			col("ws_ship_cdemo_sk", typeInt32),
			col("ws_ship_hdemo_sk", typeInt32),
			col("ws_ship_addr_sk", typeInt32),
			col("ws_web_page_sk", typeInt32),
			col("ws_web_site_sk", typeInt32),
			col("ws_ship_mode_sk", typeInt32),
			col("ws_warehouse_sk", typeInt32),
			col("ws_promo_sk", typeInt32),
			col("ws_order_number", typeInt64),
			col("ws_quantity", typeInt32),
			col("ws_wholesale_cost", typeFloat),
			col("ws_list_price", typeFloat),
			col("ws_sales_price", typeFloat),
			col("ws_ext_discount_amt", typeFloat),
			col("ws_ext_sales_price", typeFloat),
			col("ws_ext_wholesale_cost", typeFloat),
			col("ws_ext_list_price", typeFloat),
			col("ws_ext_tax", typeFloat),
			col("ws_coupon_amt", typeFloat),
			col("ws_ext_ship_cost", typeFloat),
			col("ws_net_paid", typeFloat),
			col("ws_net_paid_inc_tax", typeFloat),
			col("ws_net_paid_inc_ship", typeFloat),
			col("ws_net_paid_inc_ship_tax", typeFloat),
			col("ws_net_profit", typeFloat),
		),
		"web_site": schema(
			col("web_site_sk", typeInt32),
			col("web_site_id", typeUtf8),
			col("web_rec_start_date", typeDate32),
			col("web_rec_end_date", typeDate32),
			col("web_name", typeUtf8),
			col("web_open_date_sk", typeInt32),
			col("web_close_date_sk", typeInt32),
			col("web_class", typeUtf8),
			col("web_manager", typeUtf8),
			col("web_mkt_id", typeInt32),
			col("web_mkt_class", typeUtf8),
			col("web_mkt_desc", typeUtf8),
			col("web_market_manager", typeUtf8),
			col("web_company_id", typeInt32),
			col("web_company_name", typeUtf8),
			col("web_street_number", typeUtf8),
			col("web_street_name", typeUtf8),
			col("web_street_type", typeUtf8),
			col("web_suite_number", typeUtf8),
			col("web_city", typeUtf8),
			col("web_county", typeUtf8),
			col("web_state", typeUtf8),
			col("web_zip", typeUtf8),
			col("web_country", typeUtf8),
			col("web_gmt_offset", typeFloat),
			col("web_tax_percentage", typeFloat),
		),
	}
}
