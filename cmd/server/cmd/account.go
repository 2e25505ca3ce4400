package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"travelplanner/internal/domain/user"
	"travelplanner/internal/infrastructure/storage/postgres"
)

var (
	accountEmail     string
	accountFirstName string
	accountLastName  string
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Управление аккаунтами",
}

var accountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать аккаунт",
	Long: `Создает аккаунт с теми же проверками, что и POST /register.
Пароль запрашивается с терминала или читается первой строкой stdin.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		storage, err := postgres.New(cmd.Context(), cfg.DB.DatabaseURI, log)
		if err != nil {
			return err
		}
		defer storage.Close()

		service := user.NewService(postgres.NewUserRepository(storage.Pool(), log), user.NewPasswordValidator(), log)
		return createAccount(cmd.Context(), service, user.RegisterRequest{
			Email:     accountEmail,
			FirstName: accountFirstName,
			LastName:  accountLastName,
		}, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

type registrar interface {
	Register(ctx context.Context, req user.RegisterRequest) (user.User, error)
}

func createAccount(ctx context.Context, r registrar, req user.RegisterRequest, stdin io.Reader, stdout io.Writer) error {
	if strings.TrimSpace(req.Email) == "" {
		return errors.New("--email обязателен")
	}

	fmt.Fprint(stdout, "Пароль: ")
	password, err := readPassword(stdin)
	if err != nil {
		return fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	fmt.Fprintln(stdout)
	req.Password = password

	u, err := r.Register(ctx, req)
	if err != nil {
		return fmt.Errorf("ошибка регистрации: %w", err)
	}

	fmt.Fprintf(stdout, "Аккаунт %s создан, id %s\n", u.Email, u.ID)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	// не терминал: пайп или тест
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func init() {
	accountCreateCmd.Flags().StringVar(&accountEmail, "email", "", "email аккаунта")
	accountCreateCmd.Flags().StringVar(&accountFirstName, "first-name", "", "имя")
	accountCreateCmd.Flags().StringVar(&accountLastName, "last-name", "", "фамилия")
	_ = accountCreateCmd.MarkFlagRequired("email")

	accountCmd.AddCommand(accountCreateCmd)
}
