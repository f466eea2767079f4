// Package migration holds the command center's static datasets and the
// aggregations derived from them: the migration object inventory, the
// pipeline lifecycle steps, source-vs-target reconciliation rows, test
// rule results, and the data health block. All fixtures are read-only
// process-wide constants; nothing here is mutated after process start.
package migration

// Status is the lifecycle state of an object or pipeline step.
type Status string

const (
	StatusSuccess    Status = "success"
	StatusWarning    Status = "warning"
	StatusFailed     Status = "failed"
	StatusInProgress Status = "in_progress"
	StatusPending    Status = "pending"
)

// Object is one entry in the migration object inventory.
type Object struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Tables        int      `json:"tables"`
	Active        bool     `json:"active"`
	Type          string   `json:"type"`
	SAPName       string   `json:"sapName"`
	Size          string   `json:"size"`
	Status        Status   `json:"status"`
	Dependencies  []string `json:"dependencies"`
	Records       int      `json:"records"`
	FailedRecords int      `json:"failedRecords"`
	Reconciled    bool     `json:"reconciled"`
	TableNames    []string `json:"tableNames,omitempty"`
}

// Step is one stage of the migration pipeline lifecycle.
type Step struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Status           Status `json:"status"`
	RecordsProcessed int    `json:"recordsProcessed"`
	TotalRecords     int    `json:"totalRecords"`
	Errors           int    `json:"errors"`
	Duration         string `json:"duration"`
	Description      string `json:"description"`
}

// ReconRow is one source-vs-target reconciliation comparison.
type ReconRow struct {
	SourceObject string `json:"sourceObject"`
	SourceTable  string `json:"sourceTable"`
	SourceCount  int    `json:"sourceCount"`
	TargetObject string `json:"targetObject"`
	TargetTable  string `json:"targetTable"`
	TargetCount  int    `json:"targetCount"`
	NotOKCount   int    `json:"notOkCount"`
	TotalCount   int    `json:"totalCount"`
	ToLoadCount  int    `json:"toLoadCount"`
	Status       string `json:"status"`
}

// TestRule is one validation rule result against a target table.
type TestRule struct {
	TargetObject string `json:"targetObject"`
	TargetTable  string `json:"targetTable"`
	TargetField  string `json:"targetField"`
	RuleName     string `json:"ruleName"`
	SQLCode      string `json:"sqlCode"`
	NotOKCount   int    `json:"notOkCount"`
	TotalCount   int    `json:"totalCount"`
}

// RootCause is one mismatch category in the reconciliation summary.
type RootCause struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Impact   string `json:"impact"`
}

// TrendPoint is one day of the health trend series.
type TrendPoint struct {
	Date   string `json:"date"`
	Errors int    `json:"errors"`
	Health int    `json:"health"`
}

// Health is the overall data health scorecard.
type Health struct {
	OverallScore   int          `json:"overallScore"`
	ErrorDensity   float64      `json:"errorDensity"`
	IntegrityIndex float64      `json:"integrityIndex"`
	RiskLevel      string       `json:"riskLevel"`
	Trends         []TrendPoint `json:"trends"`
}

// Objects is the migration object inventory shown on the dashboard.
var Objects = []Object{
	{
		ID: "BANK_MASTER", Name: "BANK_MASTER", Tables: 1, Active: true,
		Type: "Master Data", SAPName: "Bank Master", Size: "1.2 GB",
		Status: StatusSuccess, Dependencies: []string{},
		Records: 23115, FailedRecords: 29, Reconciled: true,
		TableNames: []string{"BNKA"},
	},
	{
		ID: "GL_BALANCE", Name: "GL_BALANCE", Tables: 3, Active: true,
		Type: "Master Data", SAPName: "General Ledger", Size: "12.4 GB",
		Status: StatusSuccess, Dependencies: []string{"BANK_MASTER"},
		Records: 145230, FailedRecords: 0, Reconciled: true,
		TableNames: []string{"SKA1", "SKB1", "SKAT"},
	},
	{
		ID: "PRODUCT", Name: "PRODUCT", Tables: 4, Active: true,
		Type: "Master Data", SAPName: "Product", Size: "23.3 GB",
		Status: StatusWarning, Dependencies: []string{"GL_BALANCE"},
		Records: 14541, FailedRecords: 3163, Reconciled: false,
		TableNames: []string{"MARA", "MARC", "MARD", "MAKT"},
	},
	{
		ID: "VENDOR_2", Name: "VENDOR_2", Tables: 3, Active: true,
		Type: "Master Data", SAPName: "Vendor", Size: "2.1 GB",
		Status: StatusSuccess, Dependencies: []string{"GL_BALANCE"},
		Records: 2583, FailedRecords: 0, Reconciled: true,
		TableNames: []string{"LFA1", "LFB1", "LFM1"},
	},
	{
		ID: "CUSTOMER_2", Name: "CUSTOMER_2", Tables: 4, Active: true,
		Type: "Master Data", SAPName: "Customer", Size: "4.5 GB",
		Status: StatusWarning, Dependencies: []string{"GL_BALANCE"},
		Records: 8086, FailedRecords: 9507, Reconciled: false,
		TableNames: []string{"KNA1", "KNB1", "KNBK", "KNVV"},
	},
	{
		ID: "BATCHES", Name: "BATCHES", Tables: 2, Active: true,
		Type: "Master Data", SAPName: "Batches", Size: "0.1 GB",
		Status: StatusSuccess, Dependencies: []string{"PRODUCT"},
		Records: 32, FailedRecords: 0, Reconciled: true,
		TableNames: []string{"MCH1", "MCHA"},
	},
	{
		ID: "CUST_EXT_2", Name: "CUST_EXT_2", Tables: 1, Active: true,
		Type: "Master Data", SAPName: "Customer Extension", Size: "8.4 GB",
		Status: StatusFailed, Dependencies: []string{"CUSTOMER_2"},
		Records: 24560, FailedRecords: 12500, Reconciled: false,
	},
	{
		ID: "OPEN_ITEM_AP", Name: "OPEN_ITEM_AP", Tables: 2, Active: false,
		Type: "Transactional", SAPName: "Open Items AP", Size: "145.6 GB",
		Status: StatusPending, Dependencies: []string{"VENDOR_2"},
		Records: 540230, FailedRecords: 0, Reconciled: false,
	},
	{
		ID: "BOM", Name: "BOM", Tables: 2, Active: false,
		Type: "Master Data", SAPName: "Bill of Materials", Size: "4.2 GB",
		Status: StatusFailed, Dependencies: []string{"PRODUCT"},
		Records: 15600, FailedRecords: 15600, Reconciled: false,
	},
	{
		ID: "ROUTING", Name: "ROUTING", Tables: 2, Active: false,
		Type: "Master Data", SAPName: "Routing", Size: "2.8 GB",
		Status: StatusFailed, Dependencies: []string{"PRODUCT"},
		Records: 8400, FailedRecords: 8400, Reconciled: false,
	},
}

// Steps is the five-stage pipeline lifecycle.
var Steps = []Step{
	{
		ID: "extract", Name: "Extract", Status: StatusSuccess,
		RecordsProcessed: 1250000, TotalRecords: 1250000, Errors: 0,
		Duration:    "45m",
		Description: "Source data extraction from SAP legacy system.",
	},
	{
		ID: "transform", Name: "Transform", Status: StatusSuccess,
		RecordsProcessed: 1250000, TotalRecords: 1250000, Errors: 1240,
		Duration:    "1h 20m",
		Description: "Mapping rules application and data formatting.",
	},
	{
		ID: "validate", Name: "Validate", Status: StatusWarning,
		RecordsProcessed: 1248760, TotalRecords: 1250000, Errors: 8420,
		Duration:    "35m",
		Description: "Schema validation and business logic checks.",
	},
	{
		ID: "reconcile", Name: "Reconcile", Status: StatusInProgress,
		RecordsProcessed: 850000, TotalRecords: 1250000, Errors: 450,
		Duration:    "Running...",
		Description: "Comparing source vs target record integrity.",
	},
	{
		ID: "load", Name: "Load", Status: StatusPending,
		RecordsProcessed: 0, TotalRecords: 1250000, Errors: 0,
		Duration:    "-",
		Description: "Final data injection into target environment.",
	},
}

// ReconRows are the source-vs-target reconciliation comparisons.
var ReconRows = []ReconRow{
	{SourceObject: "ANAMBANK", SourceTable: "BNKA", SourceCount: 23115, TargetObject: "BANK_MASTER", TargetTable: "S_BNKA", TargetCount: 23115, NotOKCount: 29, TotalCount: 23115, ToLoadCount: 29, Status: "SUCCESS"},
	{SourceObject: "ANACUSTOMER", SourceTable: "KNA1", SourceCount: 8086, TargetObject: "CUSTOMER_2", TargetTable: "S_ADDRESS", TargetCount: 8086, NotOKCount: 3, TotalCount: 8086, ToLoadCount: 0, Status: "SUCCESS"},
	{SourceObject: "ANACUSTOMER", SourceTable: "KNBW", SourceCount: 11, TargetObject: "CUSTOMER_2", TargetTable: "S_CUS_WITH_TAX", TargetCount: 11, NotOKCount: 12, TotalCount: 11, ToLoadCount: 0, Status: "SUCCESS"},
	{SourceObject: "ANACUSTOMER", SourceTable: "KNBK", SourceCount: 284, TargetObject: "CUSTOMER_2", TargetTable: "S_CUST_BANK_DATA", TargetCount: 284, NotOKCount: 274, TotalCount: 284, ToLoadCount: 0, Status: "SUCCESS"},
	{SourceObject: "ANACUSTOMER", SourceTable: "KNB1", SourceCount: 13648, TargetObject: "CUSTOMER_2", TargetTable: "S_CUST_COMPANY", TargetCount: 13648, NotOKCount: 9507, TotalCount: 13648, ToLoadCount: 0, Status: "SUCCESS"},
	{SourceObject: "ANAPRODUCT", SourceTable: "MARA", SourceCount: 14541, TargetObject: "PRODUCT", TargetTable: "S_MARA", TargetCount: 14200, NotOKCount: 3163, TotalCount: 14200, ToLoadCount: 12335, Status: "WARNING"},
	{SourceObject: "ANAPRODUCT", SourceTable: "MARC", SourceCount: 21869, TargetObject: "PRODUCT", TargetTable: "S_MARC", TargetCount: 21305, NotOKCount: 0, TotalCount: 21305, ToLoadCount: 18913, Status: "SUCCESS"},
	{SourceObject: "ANASUPPLIER", SourceTable: "LFA1", SourceCount: 1833, TargetObject: "VENDOR_2", TargetTable: "S_ROLES", TargetCount: 2583, NotOKCount: 0, TotalCount: 2583, ToLoadCount: 2579, Status: "SUCCESS"},
	{SourceObject: "BATCHES", SourceTable: "MCH1", SourceCount: 32, TargetObject: "BATCHES", TargetTable: "S_BATCH", TargetCount: 32, NotOKCount: 0, TotalCount: 32, ToLoadCount: 0, Status: "SUCCESS"},
}

// TestRules are the validation rule results.
var TestRules = []TestRule{
	{TargetObject: "BANK_MASTER", TargetTable: "S_BNKA", TargetField: "BANKA", RuleName: "Default Testing Rule", SQLCode: "ISNULL(BANKA, '') != ''", NotOKCount: 29, TotalCount: 23115},
	{TargetObject: "BATCHES", TargetTable: "S_BATCH", TargetField: "BATCH", RuleName: "Default Testing Rule", SQLCode: "ISNULL(BATCH, '') != ''", NotOKCount: 0, TotalCount: 32},
	{TargetObject: "PRODUCT", TargetTable: "S_MARA", TargetField: "MATNR", RuleName: "Default Testing Rule", SQLCode: "ISNULL(MATNR, '') != ''", NotOKCount: 3163, TotalCount: 14200},
	{TargetObject: "CUSTOMER_2", TargetTable: "S_ADDRESS", TargetField: "NAME1", RuleName: "Null Check", SQLCode: "NAME1 IS NOT NULL", NotOKCount: 3, TotalCount: 8086},
	{TargetObject: "CUSTOMER_2", TargetTable: "S_CUST_COMPANY", TargetField: "BUKRS", RuleName: "Company Code Validation", SQLCode: "BUKRS IN ('1000', '2000')", NotOKCount: 9507, TotalCount: 13648},
}

// RootCauses are the mismatch categories behind the reconciliation gap.
var RootCauses = []RootCause{
	{Category: "DataType Mismatch", Count: 25000, Impact: "High"},
	{Category: "Missing Keys", Count: 15000, Impact: "Medium"},
	{Category: "Formatting", Count: 30000, Impact: "Low"},
}

// Insights are the analyst-facing findings surfaced alongside the
// reconciliation summary.
var Insights = []string{
	`Most mismatches (35%) originate from the "Customer Extension" object due to legacy date formats.`,
	`Adjusting mapping rule "R-402" could resolve 12,000 formatting errors in Product.`,
	`High correlation detected between "Bank Master" validation delays and "Customer" load failures.`,
}

// HealthReport is the data health scorecard.
var HealthReport = Health{
	OverallScore:   78,
	ErrorDensity:   5.6,
	IntegrityIndex: 94.2,
	RiskLevel:      "Medium",
	Trends: []TrendPoint{
		{Date: "2026-01-15", Errors: 12000, Health: 72},
		{Date: "2026-01-16", Errors: 10500, Health: 75},
		{Date: "2026-01-17", Errors: 15000, Health: 68},
		{Date: "2026-01-18", Errors: 9800, Health: 80},
		{Date: "2026-01-19", Errors: 8420, Health: 78},
	},
}
