package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dangerclosesec/scholar/internal/auth"
	"github.com/dangerclosesec/scholar/internal/config"
	"github.com/dangerclosesec/scholar/internal/database"
	"github.com/dangerclosesec/scholar/internal/repository"
	"github.com/dangerclosesec/scholar/internal/service"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	dbURL   string
	verbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbURL, "db", "d", "", "Database URL (overrides DB_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log SQL statements")

	userCreateCmd.Flags().StringVar(&newUser.EmpID, "emp-id", "", "Employee id")
	userCreateCmd.Flags().StringVar(&newUser.Name, "name", "", "Display name")
	userCreateCmd.Flags().StringVar(&newUser.Password, "password", "", "Password")
	userCreateCmd.Flags().StringVar(&newUser.Dept, "dept", "", "Department")
	userCreateCmd.Flags().StringVar(&newUser.Campus, "campus", "", "Campus")
	userCreateCmd.Flags().StringVar(&newUser.Designation, "designation", "", "Designation")
	userCreateCmd.Flags().StringVar(&newUser.Role, "role", "user", "Role: user, chair_person or admin")
	userCreateCmd.Flags().StringVar(&newUser.AccessTo, "access-to", "none", "Admin access: none, all or a domain")
	userCreateCmd.MarkFlagRequired("emp-id")
	userCreateCmd.MarkFlagRequired("name")
	userCreateCmd.MarkFlagRequired("password")

	tokenCmd.Flags().StringVar(&login.empID, "emp-id", "", "Employee id")
	tokenCmd.Flags().StringVar(&login.password, "password", "", "Password")
	tokenCmd.MarkFlagRequired("emp-id")
	tokenCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(statsCmd)
}

var rootCmd = &cobra.Command{
	Use:           "scholarctl",
	Short:         "scholarctl manages the faculty records database",
	Long:          `scholarctl migrates the schema, provisions users and issues access tokens for the faculty records API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := open(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := repository.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
		fmt.Println("Schema migrated successfully")
		return nil
	},
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var newUser service.CreateUserInput

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := open(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close(db)

		users := service.NewUserService(repository.NewUserRepository(db), auth.NewPasswordHasher())
		user, err := users.CreateUser(cmd.Context(), newUser)
		if err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		fmt.Printf("Created user %s (%s)\n", user.EmpID, user.ID)
		return nil
	},
}

var login struct {
	empID    string
	password string
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for a user",
	Long:  `Check a user's credentials and print a bearer token for the API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := open(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close(db)

		if cfg.JWT.Secret == "" {
			return fmt.Errorf("JWT_SECRET must be set")
		}

		users := service.NewUserService(repository.NewUserRepository(db), auth.NewPasswordHasher())
		p, err := users.Authenticate(cmd.Context(), login.empID, login.password)
		if err != nil {
			return fmt.Errorf("authenticating %s: %w", login.empID, err)
		}

		token, err := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod).Generate(p)
		if err != nil {
			return fmt.Errorf("generating token: %w", err)
		}
		fmt.Println(token)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the landing page counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := open(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close(db)

		userRepo := repository.NewUserRepository(db)
		cache := service.NewCacheService(cmd.Context(), service.CacheConfig{
			TTL:         cfg.Cache.TTL,
			CleanupFreq: cfg.Cache.CleanupFreq,
		})
		defer cache.Close()

		catalog := service.NewCatalog(db, userRepo, nil)
		stats, err := service.NewStatsService(cache, userRepo, catalog).Home(cmd.Context())
		if err != nil {
			return fmt.Errorf("counting records: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	},
}

func open(ctx context.Context) (*config.Config, *gorm.DB, error) {
	cfg := config.Load()
	if dbURL != "" {
		cfg.Database.URL = dbURL
	}

	level := logger.Silent
	if verbose {
		level = logger.Info
	}
	db, err := database.Open(ctx, cfg, level)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	return cfg, db, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
