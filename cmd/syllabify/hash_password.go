package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/jonathan/syllabify/internal/config"
	"github.com/spf13/cobra"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
	Long: `Read a password from the first line of stdin and print its bcrypt hash,
using BCRYPT_COST and PASSWORD_PEPPER from the environment.`,
	Example: `  echo -n 's3cret' | syllabify hash-password`,
	Args:    cobra.NoArgs,
	RunE:    runHashPassword,
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}

func runHashPassword(cmd *cobra.Command, _ []string) error {
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Scan()
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(scanner.Text(), "\r")
	if password == "" {
		return fmt.Errorf("password is empty")
	}

	hash, err := passwordConfig.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
	return err
}
