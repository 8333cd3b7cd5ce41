package domain

// AssetStatuses is the canonical (stored) status vocabulary.
func AssetStatuses() []string {
	return []string{"available", "assigned", "faulty/repair", "discard"}
}

// StatusDisplayOptions is the display-cased list used when lazily filling
// an empty status select.
func StatusDisplayOptions() []string {
	return []string{"Available", "Assigned", "Repair/Faulty", "Discard"}
}

// IndianStates is the fixed lookup backing the state select field.
func IndianStates() []string {
	return []string{
		"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
		"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand",
		"Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra", "Manipur",
		"Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
		"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura",
		"Uttar Pradesh", "Uttarakhand", "West Bengal",
		"Andaman and Nicobar Islands", "Chandigarh", "Dadra and Nagar Haveli and Daman and Diu",
		"Delhi", "Jammu and Kashmir", "Ladakh", "Lakshadweep", "Puducherry",
	}
}
