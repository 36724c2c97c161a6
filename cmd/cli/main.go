package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "finledger-cli",
		Short: "FinLedger CLI tool",
		Long:  `A command line interface for interacting with the FinLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the FinLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}
	txCmd.AddCommand(txAddCmd(), txListCmd(), txRmCmd())

	rootCmd.AddCommand(registerCmd(), txCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func registerCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{
				"name":     name,
				"email":    email,
				"password": password,
			}
			body, status, err := postJSON("/api/v1/users", payload)
			if err != nil {
				return err
			}
			if status != http.StatusCreated {
				return fmt.Errorf("registration failed (status %d): %s", status, body)
			}
			printJSON(json.RawMessage(body))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func txAddCmd() *cobra.Command {
	var (
		userID      string
		kind        string
		amount      float64
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"user_id":     userID,
				"kind":        kind,
				"amount":      amount,
				"description": description,
			}
			body, status, err := postJSON("/api/v1/transactions", payload)
			if err != nil {
				return err
			}
			if status != http.StatusCreated {
				return fmt.Errorf("create failed (status %d): %s", status, body)
			}
			printJSON(json.RawMessage(body))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id")
	cmd.Flags().StringVar(&kind, "kind", "", "Transaction kind (income or expense)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("kind")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("description")

	return cmd
}

func txListCmd() *cobra.Command {
	var (
		userID string
		kind   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's transactions with totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/users/" + userID + "/transactions"
			if kind != "" {
				path += "?kind=" + kind
			}

			body, status, err := getJSON(path)
			if err != nil {
				return err
			}
			if status != http.StatusOK {
				return fmt.Errorf("list failed (status %d): %s", status, body)
			}
			printJSON(json.RawMessage(body))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id")
	cmd.Flags().StringVar(&kind, "kind", "", "Filter by kind (income or expense)")
	cmd.MarkFlagRequired("user")

	return cmd
}

func txRmCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "rm <transaction-id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/users/" + userID + "/transactions/" + args[0]

			body, status, err := doRequest(http.MethodDelete, path, nil)
			if err != nil {
				return err
			}
			if status != http.StatusNoContent {
				return fmt.Errorf("delete failed (status %d): %s", status, body)
			}
			fmt.Println("deleted", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id")
	cmd.MarkFlagRequired("user")

	return cmd
}

func postJSON(path string, payload any) ([]byte, int, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}
	return doRequest(http.MethodPost, path, data)
}

func getJSON(path string) ([]byte, int, error) {
	return doRequest(http.MethodGet, path, nil)
}

func doRequest(method, path string, payload []byte) ([]byte, int, error) {
	client := &http.Client{Timeout: timeout}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return body, resp.StatusCode, nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
