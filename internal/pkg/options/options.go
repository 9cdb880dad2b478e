package options

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/batchmv/batchmv/internal/pkg/env"
)

// Options contains parsed flags and ENV variables.
type Options struct {
	Verbose          bool   `flag:"verbose"`  // verbose mode, print details to console
	LogFilePath      string `flag:"log-file"` // path to the log file
	WorkingDirectory string // directory the rename operations are relative to
}

func NewOptions() *Options {
	return &Options{}
}

// BindPersistentFlags for all commands.
func (o *Options) BindPersistentFlags(flags *pflag.FlagSet) {
	flags.SortFlags = true
	flags.BoolP("help", "h", false, "print help for command")
	flags.StringP("log-file", "l", "", "path to a log file for details")
	flags.StringP("working-dir", "d", "", "use other working directory")
	flags.BoolP("verbose", "v", false, "print details")
}

// Validate required options - defined by field name.
func (o *Options) Validate(required []string) string {
	var errors []string
	envNaming := env.NewNamingConvention()
	reflection := reflect.Indirect(reflect.ValueOf(o))
	types := reflect.TypeOf(*o)

	// Iterate over required fields
	for _, fieldName := range required {
		fieldType, exists := types.FieldByName(fieldName)
		fieldNameHumanReadable := strcase.ToDelimited(fieldName, ' ')
		if !exists {
			panic(fmt.Sprintf("field \"%s\" doesn't exist in Options struct", fieldName))
		}

		flag := fieldType.Tag.Get("flag")
		if reflection.FieldByName(fieldName).Len() > 0 {
			continue
		}

		// Create error message by field type
		if len(flag) > 0 {
			errors = append(errors, fmt.Sprintf(
				`- Missing %s. Please use "--%s" flag or ENV variable "%s".`,
				fieldNameHumanReadable,
				flag,
				envNaming.Replace(flag),
			))
		} else {
			errors = append(errors, fmt.Sprintf(`- Missing %s.`, fieldNameHumanReadable))
		}
	}

	return strings.Join(errors, "\n")
}

// Load all sources of Options - flags, ENVs and dotenv files.
func (o *Options) Load(flags *pflag.FlagSet) (warnings []string, err error) {
	// Env parser
	envNaming := env.NewNamingConvention()
	parser := viper.NewWithOptions(viper.EnvKeyReplacer(envNaming))

	// Bind flags
	if err = parser.BindPFlags(flags); err != nil {
		return
	}

	// Bind ENV variables
	parser.AutomaticEnv()

	// Set working directory + load dotenv file if present
	o.WorkingDirectory, err = getWorkingDirectory(parser)
	o.WorkingDirectory = strings.TrimRight(o.WorkingDirectory, string(os.PathSeparator))
	if err != nil {
		return
	}
	warnings = append(warnings, loadDotEnv(o.WorkingDirectory)...)

	// For each Options struct field with "flag" tag -> load value from parser
	reflection := reflect.Indirect(reflect.ValueOf(o))
	types := reflect.TypeOf(*o)
	for i := 0; i < reflection.NumField(); i++ {
		if flag := types.Field(i).Tag.Get("flag"); len(flag) > 0 {
			if value := parser.Get(flag); value != nil {
				field := reflection.Field(i)
				switch field.Kind() {
				case reflect.Bool:
					field.SetBool(cast.ToBool(value))
				case reflect.String:
					field.SetString(cast.ToString(value))
				default:
					panic(fmt.Sprintf("unexpected type \"%s\" of the field \"%s\"", field.Kind(), types.Field(i).Name))
				}
			}
		}
	}

	return
}

// Dump Options for debugging.
func (o *Options) Dump() string {
	return fmt.Sprintf("Parsed options: %#v", o)
}

// getWorkingDirectory from flag or by default from OS.
func getWorkingDirectory(parser *viper.Viper) (string, error) {
	value := parser.GetString("working-dir")
	if len(value) > 0 {
		return filepath.Abs(value)
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot get current working directory: %w", err)
	}
	return dir, nil
}

// loadDotEnv loads ENVs from a dotenv file if present, existing ENVs take precedence.
func loadDotEnv(dir string) (warnings []string) {
	for _, file := range env.Files() {
		path := filepath.Join(dir, file)
		stat, err := os.Stat(path)
		switch {
		case err != nil && os.IsNotExist(err):
			continue
		case err != nil:
			warnings = append(warnings, fmt.Sprintf(`Cannot check if path "%s" exists: %s`, path, err))
			continue
		case stat.IsDir():
			// Expected file, found dir
			continue
		}

		envsFromFile, err := godotenv.Read(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf(`Cannot load ENVs from "%s": %s`, path, err))
			continue
		}

		for key, value := range envsFromFile {
			if _, found := os.LookupEnv(key); !found {
				if err := os.Setenv(key, value); err != nil {
					warnings = append(warnings, fmt.Sprintf(`Cannot set ENV "%s": %s`, key, err))
				}
			}
		}
		return warnings
	}

	return warnings
}
