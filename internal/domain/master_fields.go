package domain

// MasterFields is the fixed superset of field descriptors offered when an
// operator composes a brand-new asset type inline. The order here is the
// canonical order selected fields keep in the new type.
func MasterFields() []FieldDescriptor {
	return []FieldDescriptor{
		{Label: "Previous Owner", Name: "prev_owner", Type: FieldTypeText},
		{Label: "Username", Name: "username", Type: FieldTypeText},
		{Label: "Previous User Code", Name: "prev_user_code", Type: FieldTypeText},
		{Label: "User Code", Name: "user_code", Type: FieldTypeText},
		{Label: "Area of Collection", Name: "area_of_collection", Type: FieldTypeText},
		{Label: "Area", Name: "area", Type: FieldTypeText},
		{Label: "State", Name: "state", Type: FieldTypeSelect, Options: IndianStates()},
		{Label: "Amount", Name: "amount", Type: FieldTypeNumber},
		{Label: "GST (18%)", Name: "gst_18", Type: FieldTypeNumber},
		{Label: "GST (22%)", Name: "gst_22", Type: FieldTypeNumber},
		{Label: "GST (28%)", Name: "gst_28", Type: FieldTypeNumber},
		{Label: "Total", Name: "total", Type: FieldTypeNumber},
		{Label: "Date of Purchase", Name: "purchase_date", Type: FieldTypeDate},
		{Label: "Previous Given Date", Name: "prev_given_date", Type: FieldTypeDate},
		{Label: "Given Date", Name: "given_date", Type: FieldTypeDate},
		{Label: "Collected Date", Name: "collected_date", Type: FieldTypeDate},
		{Label: "Year", Name: "year", Type: FieldTypeText},
		{Label: "Status", Name: "status", Type: FieldTypeSelect, Options: AssetStatuses()},
		{Label: "Remarks", Name: "remarks", Type: FieldTypeText},
		{Label: "Invoice No.", Name: "invoice_no", Type: FieldTypeText},
		{Label: "Vendor", Name: "vendor", Type: FieldTypeDatalist, Options: []string{}},
		{Label: "License", Name: "license", Type: FieldTypeText},
		{Label: "MTR Asset Tag", Name: "mtr_asset_tag", Type: FieldTypeText},
		{Label: "Asset Tag", Name: "asset_tag", Type: FieldTypeText},
		{Label: "Serial No.", Name: "serial_no", Type: FieldTypeText},
		{Label: "OS", Name: "os", Type: FieldTypeDatalist, Options: []string{}},
		{Label: "Model", Name: "model", Type: FieldTypeDatalist, Options: []string{}},
		{Label: "System Manufacturer", Name: "system_manufacturer", Type: FieldTypeDatalist, Options: []string{}},
		{Label: "Domain", Name: "domain", Type: FieldTypeText},
		{Label: "IP Address", Name: "ip_address", Type: FieldTypeText},
		{Label: "Processor", Name: "processor", Type: FieldTypeText},
		{Label: "RAM", Name: "ram", Type: FieldTypeText},
		{Label: "Courier by", Name: "courier_by", Type: FieldTypeText},
		{Label: "HDD Size", Name: "hdd", Type: FieldTypeText},
		{Label: "Free Space", Name: "free_space", Type: FieldTypeText},
		{Label: "Endpoint Name", Name: "endpoint_name", Type: FieldTypeText},
		{Label: "Received on Approval", Name: "received_on_approval", Type: FieldTypeText},
	}
}
