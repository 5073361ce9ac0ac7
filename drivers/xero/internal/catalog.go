package driver

import "github.com/sailfin-io/tap-xero/types"

// catalog is the full static table of entity stream descriptors. Schemas
// are carried for downstream validators; the sync engine itself only reads
// the descriptor fields.
//
// Pagination kinds are per-entity upstream behavior, not configuration:
// paginated endpoints honor page=, bookmarked endpoints only honor the
// where filter, journals page on a sequence offset, and the rest return
// everything in one response.
func catalog() []*types.Stream {
	return []*types.Stream{
		// paginated
		{
			Name: "bank_transactions", Path: "/BankTransactions",
			PrimaryKey: "BankTransactionID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Paginated, SupportsOrderBy: true,
			Schema: types.NewSchema(map[string]types.DataType{
				"BankTransactionID": types.String,
				"Type":              types.String,
				"Contact":           types.Object,
				"LineItems":         types.Array,
				"BankAccount":       types.Object,
				"IsReconciled":      types.Boolean,
				"Date":              types.String,
				"Reference":         types.String,
				"CurrencyCode":      types.String,
				"CurrencyRate":      types.Number,
				"Status":            types.String,
				"LineAmountTypes":   types.String,
				"SubTotal":          types.Number,
				"TotalTax":          types.Number,
				"Total":             types.Number,
				"UpdatedDateUTC":    types.String,
				"HasAttachments":    types.Boolean,
			}),
		},
		{
			Name: "contacts", Path: "/Contacts",
			PrimaryKey: "ContactID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Paginated, SupportsOrderBy: true,
			Schema: types.NewSchema(map[string]types.DataType{
				"ContactID":                 types.String,
				"ContactNumber":             types.String,
				"AccountNumber":             types.String,
				"ContactStatus":             types.String,
				"Name":                      types.String,
				"FirstName":                 types.String,
				"LastName":                  types.String,
				"EmailAddress":              types.String,
				"BankAccountDetails":        types.String,
				"TaxNumber":                 types.String,
				"AccountsReceivableTaxType": types.String,
				"AccountsPayableTaxType":    types.String,
				"Addresses":                 types.Array,
				"Phones":                    types.Array,
				"UpdatedDateUTC":            types.String,
				"ContactGroups":             types.Array,
				"IsSupplier":                types.Boolean,
				"IsCustomer":                types.Boolean,
				"DefaultCurrency":           types.String,
				"HasAttachments":            types.Boolean,
			}),
		},
		{
			Name: "quotes", Path: "/Quotes",
			PrimaryKey: "QuoteID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Paginated, SupportsOrderBy: true,
			Schema: types.NewSchema(map[string]types.DataType{
				"QuoteID":          types.String,
				"QuoteNumber":      types.String,
				"Reference":        types.String,
				"Terms":            types.String,
				"Contact":          types.Object,
				"LineItems":        types.Array,
				"Date":             types.String,
				"DateString":       types.String,
				"ExpiryDate":       types.String,
				"ExpiryDateString": types.String,
				"Status":           types.String,
				"CurrencyCode":     types.String,
				"CurrencyRate":     types.Number,
				"SubTotal":         types.Number,
				"TotalTax":         types.Number,
				"Total":            types.Number,
				"TotalDiscount":    types.Number,
				"Title":            types.String,
				"Summary":          types.String,
				"BrandingThemeID":  types.String,
				"UpdatedDateUTC":   types.String,
				"LineAmountTypes":  types.String,
			}),
		},
		{
			Name: "credit_notes", Path: "/CreditNotes",
			PrimaryKey: "CreditNoteID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Paginated, SupportsOrderBy: true,
			Schema: types.NewSchema(map[string]types.DataType{
				"CreditNoteID":     types.String,
				"CreditNoteNumber": types.String,
				"Type":             types.String,
				"Contact":          types.Object,
				"Date":             types.String,
				"DueDate":          types.String,
				"Status":           types.String,
				"LineAmountTypes":  types.String,
				"LineItems":        types.Array,
				"SubTotal":         types.Number,
				"TotalTax":         types.Number,
				"Total":            types.Number,
				"UpdatedDateUTC":   types.String,
				"CurrencyCode":     types.String,
				"FullyPaidOnDate":  types.String,
				"RemainingCredit":  types.Number,
				"Allocations":      types.Array,
				"HasAttachments":   types.Boolean,
			}),
		},
		{
			Name: "invoices", Path: "/Invoices",
			PrimaryKey: "InvoiceID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Paginated, SupportsOrderBy: true,
			Schema: types.NewSchema(map[string]types.DataType{
				"InvoiceID":       types.String,
				"Type":            types.String,
				"InvoiceNumber":   types.String,
				"Reference":       types.String,
				"Payments":        types.Array,
				"CreditNotes":     types.Array,
				"Prepayments":     types.Array,
				"Overpayments":    types.Array,
				"AmountDue":       types.Number,
				"AmountPaid":      types.Number,
				"AmountCredited":  types.Number,
				"CurrencyRate":    types.Number,
				"IsDiscounted":    types.Boolean,
				"HasAttachments":  types.Boolean,
				"Contact":         types.Object,
				"DateString":      types.String,
				"Date":            types.String,
				"DueDateString":   types.String,
				"DueDate":         types.String,
				"Status":          types.String,
				"LineAmountTypes": types.String,
				"LineItems":       types.Array,
				"SubTotal":        types.Number,
				"TotalTax":        types.Number,
				"Total":           types.Number,
				"TotalDiscount":   types.Number,
				"UpdatedDateUTC":  types.String,
				"CurrencyCode":    types.String,
				"FullyPaidOnDate": types.String,
				"BrandingThemeID": types.String,
				"SentToContact":   types.Boolean,
			}),
		},
		{
			// order= is disabled: the upstream is known to mishandle it
			// for manual journals
			Name: "manual_journals", Path: "/ManualJournals",
			PrimaryKey: "ManualJournalID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Paginated, SupportsOrderBy: false,
			Schema: types.NewSchema(map[string]types.DataType{
				"ManualJournalID":        types.String,
				"Narration":              types.String,
				"JournalLines":           types.Array,
				"Date":                   types.String,
				"DateString":             types.String,
				"Status":                 types.String,
				"LineAmountTypes":        types.String,
				"UpdatedDateUTC":         types.String,
				"ShowOnCashBasisReports": types.Boolean,
				"HasAttachments":         types.Boolean,
			}),
		},
		{
			Name: "overpayments", Path: "/Overpayments",
			PrimaryKey: "OverpaymentID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Paginated, SupportsOrderBy: true,
			Schema: types.NewSchema(map[string]types.DataType{
				"OverpaymentID":   types.String,
				"Type":            types.String,
				"Contact":         types.Object,
				"Date":            types.String,
				"Status":          types.String,
				"LineAmountTypes": types.String,
				"LineItems":       types.Array,
				"SubTotal":        types.Number,
				"TotalTax":        types.Number,
				"Total":           types.Number,
				"UpdatedDateUTC":  types.String,
				"CurrencyCode":    types.String,
				"CurrencyRate":    types.Number,
				"RemainingCredit": types.Number,
				"Allocations":     types.Array,
				"HasAttachments":  types.Boolean,
			}),
		},
		{
			Name: "payments", Path: "/Payments",
			PrimaryKey: "PaymentID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Paginated, SupportsOrderBy: true,
			Schema: types.NewSchema(map[string]types.DataType{
				"PaymentID":           types.String,
				"Date":                types.String,
				"Amount":              types.Number,
				"Reference":           types.String,
				"CurrencyRate":        types.Number,
				"PaymentType":         types.String,
				"Status":              types.String,
				"UpdatedDateUTC":      types.String,
				"Invoice":             types.Object,
				"CreditNote":          types.Object,
				"Prepayment":          types.Object,
				"Overpayment":         types.Object,
				"Account":             types.Object,
				"IsReconciled":        types.Boolean,
				"HasAccount":          types.Boolean,
				"HasValidationErrors": types.Boolean,
			}),
		},
		{
			Name: "prepayments", Path: "/Prepayments",
			PrimaryKey: "PrepaymentID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Paginated, SupportsOrderBy: true,
			Schema: types.NewSchema(map[string]types.DataType{
				"PrepaymentID":    types.String,
				"Type":            types.String,
				"Contact":         types.Object,
				"Date":            types.String,
				"Status":          types.String,
				"LineAmountTypes": types.String,
				"LineItems":       types.Array,
				"SubTotal":        types.Number,
				"TotalTax":        types.Number,
				"Total":           types.Number,
				"UpdatedDateUTC":  types.String,
				"CurrencyCode":    types.String,
				"CurrencyRate":    types.Number,
				"RemainingCredit": types.Number,
				"Allocations":     types.Array,
				"HasAttachments":  types.Boolean,
			}),
		},
		{
			Name: "purchase_orders", Path: "/PurchaseOrders",
			PrimaryKey: "PurchaseOrderID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Paginated, SupportsOrderBy: true,
			Schema: types.NewSchema(map[string]types.DataType{
				"PurchaseOrderID":      types.String,
				"PurchaseOrderNumber":  types.String,
				"DateString":           types.String,
				"Date":                 types.String,
				"DeliveryDateString":   types.String,
				"DeliveryDate":         types.String,
				"DeliveryAddress":      types.String,
				"AttentionTo":          types.String,
				"Telephone":            types.String,
				"DeliveryInstructions": types.String,
				"Status":               types.String,
				"LineAmountTypes":      types.String,
				"LineItems":            types.Array,
				"SubTotal":             types.Number,
				"TotalTax":             types.Number,
				"Total":                types.Number,
				"UpdatedDateUTC":       types.String,
				"CurrencyCode":         types.String,
				"CurrencyRate":         types.Number,
				"Contact":              types.Object,
				"BrandingThemeID":      types.String,
				"HasAttachments":       types.Boolean,
			}),
		},

		// journal sequence
		{
			Name: "journals", Path: "/Journals",
			PrimaryKey: "JournalID", ReplicationKey: "JournalNumber",
			PaginationKind: types.JournalSequence,
			Schema: types.NewSchema(map[string]types.DataType{
				"JournalID":      types.String,
				"JournalDate":    types.String,
				"JournalNumber":  types.Integer,
				"CreatedDateUTC": types.String,
				"Reference":      types.String,
				"SourceID":       types.String,
				"SourceType":     types.String,
				"JournalLines":   types.Array,
			}),
		},

		// bookmarked
		{
			Name: "accounts", Path: "/Accounts",
			PrimaryKey: "AccountID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Bookmarked,
			Schema: types.NewSchema(map[string]types.DataType{
				"AccountID":               types.String,
				"Code":                    types.String,
				"Name":                    types.String,
				"Status":                  types.String,
				"Type":                    types.String,
				"TaxType":                 types.String,
				"Description":             types.String,
				"Class":                   types.String,
				"SystemAccount":           types.String,
				"EnablePaymentsToAccount": types.Boolean,
				"ShowInExpenseClaims":     types.Boolean,
				"BankAccountNumber":       types.String,
				"BankAccountType":         types.String,
				"CurrencyCode":            types.String,
				"ReportingCode":           types.String,
				"ReportingCodeName":       types.String,
				"HasAttachments":          types.Boolean,
				"UpdatedDateUTC":          types.String,
			}),
		},
		{
			// transfers are immutable upstream, so creation time is the
			// replication key
			Name: "bank_transfers", Path: "/BankTransfers",
			PrimaryKey: "BankTransferID", ReplicationKey: "CreatedDateUTC",
			PaginationKind: types.Bookmarked,
			Schema: types.NewSchema(map[string]types.DataType{
				"BankTransferID":        types.String,
				"FromBankAccount":       types.Object,
				"ToBankAccount":         types.Object,
				"Amount":                types.Number,
				"Date":                  types.String,
				"DateString":            types.String,
				"FromBankTransactionID": types.String,
				"ToBankTransactionID":   types.String,
				"HasAttachments":        types.Boolean,
				"CreatedDateUTC":        types.String,
			}),
		},
		{
			Name: "employees", Path: "/Employees",
			PrimaryKey: "EmployeeID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Bookmarked,
			Schema: types.NewSchema(map[string]types.DataType{
				"EmployeeID":     types.String,
				"Status":         types.String,
				"FirstName":      types.String,
				"LastName":       types.String,
				"ExternalLink":   types.Object,
				"UpdatedDateUTC": types.String,
			}),
		},
		{
			Name: "expense_claims", Path: "/ExpenseClaims",
			PrimaryKey: "ExpenseClaimID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Bookmarked,
			Schema: types.NewSchema(map[string]types.DataType{
				"ExpenseClaimID": types.String,
				"Status":         types.String,
				"User":           types.Object,
				"Receipts":       types.Array,
				"Payments":       types.Array,
				"Total":          types.Number,
				"AmountDue":      types.Number,
				"AmountPaid":     types.Number,
				"PaymentDueDate": types.String,
				"ReportingDate":  types.String,
				"ReceiptID":      types.String,
				"UpdatedDateUTC": types.String,
			}),
		},
		{
			Name: "items", Path: "/Items",
			PrimaryKey: "ItemID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Bookmarked,
			Schema: types.NewSchema(map[string]types.DataType{
				"ItemID":                    types.String,
				"Code":                      types.String,
				"Name":                      types.String,
				"IsSold":                    types.Boolean,
				"IsPurchased":               types.Boolean,
				"Description":               types.String,
				"PurchaseDescription":       types.String,
				"PurchaseDetails":           types.Object,
				"SalesDetails":              types.Object,
				"IsTrackedAsInventory":      types.Boolean,
				"InventoryAssetAccountCode": types.String,
				"TotalCostPool":             types.Number,
				"QuantityOnHand":            types.Number,
				"UpdatedDateUTC":            types.String,
			}),
		},
		{
			Name: "receipts", Path: "/Receipts",
			PrimaryKey: "ReceiptID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Bookmarked,
			Schema: types.NewSchema(map[string]types.DataType{
				"ReceiptID":       types.String,
				"ReceiptNumber":   types.String,
				"Status":          types.String,
				"User":            types.Object,
				"Contact":         types.Object,
				"Date":            types.String,
				"DateString":      types.String,
				"LineAmountTypes": types.String,
				"LineItems":       types.Array,
				"SubTotal":        types.Number,
				"TotalTax":        types.Number,
				"Total":           types.Number,
				"Reference":       types.String,
				"UpdatedDateUTC":  types.String,
				"HasAttachments":  types.Boolean,
			}),
		},
		{
			Name: "users", Path: "/Users",
			PrimaryKey: "UserID", ReplicationKey: "UpdatedDateUTC",
			PaginationKind: types.Bookmarked,
			Schema: types.NewSchema(map[string]types.DataType{
				"UserID":           types.String,
				"EmailAddress":     types.String,
				"FirstName":        types.String,
				"LastName":         types.String,
				"UpdatedDateUTC":   types.String,
				"IsSubscriber":     types.Boolean,
				"OrganisationRole": types.String,
			}),
		},

		// full table
		{
			Name: "branding_themes", Path: "/BrandingThemes",
			PrimaryKey:     "BrandingThemeID",
			PaginationKind: types.FullTable,
			Schema: types.NewSchema(map[string]types.DataType{
				"BrandingThemeID": types.String,
				"Name":            types.String,
				"LogoUrl":         types.String,
				"Type":            types.String,
				"SortOrder":       types.Integer,
				"CreatedDateUTC":  types.String,
			}),
		},
		{
			Name: "contact_groups", Path: "/ContactGroups",
			PrimaryKey:     "ContactGroupID",
			PaginationKind: types.FullTable,
			Schema: types.NewSchema(map[string]types.DataType{
				"ContactGroupID": types.String,
				"Name":           types.String,
				"Status":         types.String,
				"Contacts":       types.Array,
			}),
		},
		{
			Name: "currencies", Path: "/Currencies",
			PrimaryKey:     "Code",
			PaginationKind: types.FullTable,
			Schema: types.NewSchema(map[string]types.DataType{
				"Code":        types.String,
				"Description": types.String,
			}),
		},
		{
			Name: "organisations", Path: "/Organisations",
			PrimaryKey:     "OrganisationID",
			PaginationKind: types.FullTable,
			Schema: types.NewSchema(map[string]types.DataType{
				"OrganisationID":         types.String,
				"APIKey":                 types.String,
				"Name":                   types.String,
				"LegalName":              types.String,
				"PaysTax":                types.Boolean,
				"Version":                types.String,
				"OrganisationType":       types.String,
				"BaseCurrency":           types.String,
				"CountryCode":            types.String,
				"IsDemoCompany":          types.Boolean,
				"OrganisationStatus":     types.String,
				"RegistrationNumber":     types.String,
				"TaxNumber":              types.String,
				"FinancialYearEndDay":    types.Integer,
				"FinancialYearEndMonth":  types.Integer,
				"SalesTaxBasis":          types.String,
				"SalesTaxPeriod":         types.String,
				"DefaultSalesTax":        types.String,
				"DefaultPurchasesTax":    types.String,
				"PeriodLockDate":         types.String,
				"EndOfYearLockDate":      types.String,
				"CreatedDateUTC":         types.String,
				"Timezone":               types.String,
				"OrganisationEntityType": types.String,
				"ShortCode":              types.String,
				"LineOfBusiness":         types.String,
				"Addresses":              types.Array,
				"Phones":                 types.Array,
				"ExternalLinks":          types.Array,
				"PaymentTerms":           types.Object,
			}),
		},
		{
			Name: "repeating_invoices", Path: "/RepeatingInvoices",
			PrimaryKey:     "RepeatingInvoiceID",
			PaginationKind: types.FullTable,
			Schema: types.NewSchema(map[string]types.DataType{
				"RepeatingInvoiceID": types.String,
				"Type":               types.String,
				"Contact":            types.Object,
				"Schedule":           types.Object,
				"LineItems":          types.Array,
				"LineAmountTypes":    types.String,
				"Reference":          types.String,
				"BrandingThemeID":    types.String,
				"CurrencyCode":       types.String,
				"Status":             types.String,
				"SubTotal":           types.Number,
				"TotalTax":           types.Number,
				"Total":              types.Number,
				"HasAttachments":     types.Boolean,
			}),
		},
		{
			Name: "tax_rates", Path: "/TaxRates",
			PrimaryKey:     "Name",
			PaginationKind: types.FullTable,
			Schema: types.NewSchema(map[string]types.DataType{
				"Name":                  types.String,
				"TaxType":               types.String,
				"CanApplyToAssets":      types.Boolean,
				"CanApplyToEquity":      types.Boolean,
				"CanApplyToExpenses":    types.Boolean,
				"CanApplyToLiabilities": types.Boolean,
				"CanApplyToRevenue":     types.Boolean,
				"DisplayTaxRate":        types.Number,
				"EffectiveRate":         types.Number,
				"Status":                types.String,
				"TaxComponents":         types.Array,
			}),
		},
		{
			Name: "tracking_categories", Path: "/TrackingCategories",
			PrimaryKey:     "TrackingCategoryID",
			PaginationKind: types.FullTable,
			Schema: types.NewSchema(map[string]types.DataType{
				"TrackingCategoryID": types.String,
				"Name":               types.String,
				"Status":             types.String,
				"Options":            types.Array,
			}),
		},
		{
			Name: "linked_transactions", Path: "/LinkedTransactions",
			PrimaryKey:     "LinkedTransactionID",
			PaginationKind: types.FullTable,
			Schema: types.NewSchema(map[string]types.DataType{
				"LinkedTransactionID": types.String,
				"SourceTransactionID": types.String,
				"SourceLineItemID":    types.String,
				"ContactID":           types.String,
				"TargetTransactionID": types.String,
				"TargetLineItemID":    types.String,
				"Type":                types.String,
				"Status":              types.String,
				"UpdatedDateUTC":      types.String,
			}),
		},
	}
}
