package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/uctoportal/backend/internal/adapter/http/dto"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "uctoportal-cli",
		Short: "ÚčtoPortál CLI tool",
		Long:  `A command line interface for interacting with the ÚčtoPortál API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ÚčtoPortál API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	companiesCmd := &cobra.Command{
		Use:   "companies",
		Short: "List known companies",
		Run: func(cmd *cobra.Command, args []string) {
			listCompanies()
		},
	}

	var accountsICO string
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the account directory of a company",
		Run: func(cmd *cobra.Command, args []string) {
			listAccounts(accountsICO)
		},
	}
	accountsCmd.Flags().StringVar(&accountsICO, "ico", "", "Company IČO")
	accountsCmd.MarkFlagRequired("ico")

	var (
		stmtICO     string
		stmtAccount string
		stmtYear    int
	)
	statementCmd := &cobra.Command{
		Use:   "statement",
		Short: "Print the running-balance statement of an account",
		Run: func(cmd *cobra.Command, args []string) {
			printStatement(stmtICO, stmtAccount, stmtYear)
		},
	}
	statementCmd.Flags().StringVar(&stmtICO, "ico", "", "Company IČO")
	statementCmd.Flags().StringVar(&stmtAccount, "account", "", "Account label or code")
	statementCmd.Flags().IntVar(&stmtYear, "year", time.Now().Year(), "Accounting year")
	statementCmd.MarkFlagRequired("ico")
	statementCmd.MarkFlagRequired("account")

	var (
		importICO  string
		importYear int
	)
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Mirror a company's legacy export",
		Run: func(cmd *cobra.Command, args []string) {
			runImport(importICO, importYear)
		},
	}
	importCmd.Flags().StringVar(&importICO, "ico", "", "Company IČO")
	importCmd.Flags().IntVar(&importYear, "year", time.Now().Year(), "Accounting year")
	importCmd.MarkFlagRequired("ico")

	var importsICO string
	importsCmd := &cobra.Command{
		Use:   "imports",
		Short: "Show the import history of a company",
		Run: func(cmd *cobra.Command, args []string) {
			listImports(importsICO)
		},
	}
	importsCmd.Flags().StringVar(&importsICO, "ico", "", "Company IČO")
	importsCmd.MarkFlagRequired("ico")

	rootCmd.AddCommand(companiesCmd, accountsCmd, statementCmd, importCmd, importsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getJSON(path string, out any) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	if err := json.Unmarshal(body, out); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
}

func listCompanies() {
	var resp dto.ListCompaniesResponse
	getJSON("/api/v1/companies", &resp)

	for _, c := range resp.Companies {
		fmt.Printf("%s  %s\n", c.ICO, c.Name)
	}
	fmt.Printf("Total: %d\n", resp.Total)
}

func listAccounts(ico string) {
	var resp dto.ListAccountsResponse
	getJSON("/api/v1/companies/"+url.PathEscape(ico)+"/accounts", &resp)

	for _, a := range resp.Accounts {
		kind := "banka"
		if a.IsCash {
			kind = "pokladna"
		}
		fmt.Printf("%-8s  %-10s  %-25s  %s\n", a.Code, kind, a.DisplayLabel, a.InstitutionName)
	}
	fmt.Printf("Total: %d\n", resp.Total)
}

func printStatement(ico, account string, year int) {
	query := url.Values{}
	query.Set("account", account)
	query.Set("year", fmt.Sprintf("%d", year))

	var resp dto.StatementResponse
	getJSON("/api/v1/companies/"+url.PathEscape(ico)+"/statement?"+query.Encode(), &resp)

	fmt.Printf("Výpis %s (%s) za rok %d\n", resp.AccountCode, resp.AccountName, resp.Year)
	for _, line := range resp.Lines {
		date := line.Date
		if date == "" {
			date = "??"
		}
		fmt.Printf("%-10s  %-30s  %12s  %12s  %14s\n",
			date, line.Description,
			line.CreditAmount.StringFixed(2), line.DebitAmount.StringFixed(2),
			line.RunningBalance.StringFixed(2))
	}
	fmt.Printf("Obraty: MD %s / D %s, zůstatek %s (%d řádků)\n",
		resp.Totals.TotalCredit.StringFixed(2),
		resp.Totals.TotalDebit.StringFixed(2),
		resp.Totals.FinalBalance.StringFixed(2),
		resp.Totals.LineCount)
}

func runImport(ico string, year int) {
	payload, _ := json.Marshal(dto.RunImportRequest{Year: year})

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/companies/"+url.PathEscape(ico)+"/imports", "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("Import FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var run dto.ImportRunResponse
	if err := json.Unmarshal(body, &run); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Import %s: %s, %d accounts, %d postings\n", run.ID, run.Status, run.AccountCount, run.PostingCount)
}

func listImports(ico string) {
	var resp dto.ListImportRunsResponse
	getJSON("/api/v1/companies/"+url.PathEscape(ico)+"/imports", &resp)

	for _, run := range resp.Imports {
		fmt.Printf("%s  %d  %-9s  accounts=%d postings=%d  %s\n",
			run.StartedAt.Format(time.RFC3339), run.Year, run.Status,
			run.AccountCount, run.PostingCount, run.Error)
	}
	fmt.Printf("Total: %d\n", resp.Total)
}
