package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivanz/interq/internal/store"
	"github.com/ivanz/interq/internal/users"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listUsers(cmd)
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		name := args[0]
		if err := users.ValidateNew(name, st.UserExists); err != nil {
			return err
		}
		if err := st.CreateUser(name); err != nil {
			return err
		}
		fmt.Println("created", name)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile and all its progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteUser(args[0]); err != nil {
			return err
		}
		fmt.Println("deleted", args[0])
		return nil
	},
}

func init() {
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersDeleteCmd)
}

func listUsers(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	names, err := st.ListUsers()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("no profiles yet")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
