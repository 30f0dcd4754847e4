package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/atozgarments/garmenttrack/internal/repository"
)

var (
	clientName    string
	clientEmail   string
	clientPhone   string
	clientAddress string
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients",
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		clients := a.clients.Clients()
		if len(clients) == 0 {
			fmt.Println("No clients yet.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "Name", "Email", "Phone"})
		for _, c := range clients {
			t.AppendRow(table.Row{c.ID, c.Name, c.Email.String, c.Phone.String})
		}
		t.Render()
		return nil
	},
}

var clientsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a client",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(clientName) == "" {
			return nil
		}

		in := repository.ClientInput{Name: clientName}
		if clientEmail != "" {
			in.Email = &clientEmail
		}
		if clientPhone != "" {
			in.Phone = &clientPhone
		}
		if clientAddress != "" {
			in.Address = &clientAddress
		}

		client, err := a.clients.Add(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Printf("Added client %s\n", client.ID)
		return nil
	},
}

func init() {
	clientsAddCmd.Flags().StringVar(&clientName, "name", "", "client name (required)")
	clientsAddCmd.Flags().StringVar(&clientEmail, "email", "", "client email")
	clientsAddCmd.Flags().StringVar(&clientPhone, "phone", "", "client phone")
	clientsAddCmd.Flags().StringVar(&clientAddress, "address", "", "client address")

	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsAddCmd)
}
