package constant

// AssetType classifies an asset for display grouping.
type AssetType string

const (
	AssetCash       AssetType = "cash"
	AssetBank       AssetType = "bank"
	AssetEWallet    AssetType = "ewallet"
	AssetInvestment AssetType = "investment"
)

// Valid reports whether t is one of the known asset types.
func (t AssetType) Valid() bool {
	switch t {
	case AssetCash, AssetBank, AssetEWallet, AssetInvestment:
		return true
	}
	return false
}

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}
