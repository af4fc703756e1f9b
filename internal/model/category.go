package model

// Category taxonomy: a fixed, ordered list of permitted category labels per
// transaction type. Static configuration, not derived data. The first entry of
// each list is the default category for new records of that type. The taxonomy
// drives selection UIs only; any string remains structurally valid on a
// stored transaction.
var categories = map[string][]string{
	TransactionTypeExpense:  {"飲食", "交通", "居住", "娛樂", "醫療", "教育", "購物", "雜項"},
	TransactionTypeIncome:   {"薪資", "獎金", "投資收益", "兼職", "其他"},
	TransactionTypeTransfer: {"轉帳"},
}

// CategoriesFor returns the ordered category list for a transaction type.
// Unknown types return nil.
func CategoriesFor(transactionType string) []string {
	src := categories[transactionType]
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// DefaultCategory returns the default category label for a transaction type:
// the first entry of its taxonomy. Unknown types return the empty string.
func DefaultCategory(transactionType string) string {
	if src := categories[transactionType]; len(src) > 0 {
		return src[0]
	}
	return ""
}

// AllCategories returns the full taxonomy keyed by transaction type.
func AllCategories() map[string][]string {
	out := make(map[string][]string, len(categories))
	for t := range categories {
		out[t] = CategoriesFor(t)
	}
	return out
}
