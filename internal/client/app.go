package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-char-keeper/internal/adapter"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/models"
)

// Commands understood by [App.Run].
const (
	CmdRegister   = "register"
	CmdData       = "data"
	CmdEmail      = "email"
	CmdAPIs       = "apis"
	CmdMaps       = "maps"
	CmdCharacters = "characters"
	CmdMain       = "main"
	CmdSetMain    = "set-main"
	CmdActive     = "active"
	CmdLogged     = "logged"
	CmdHealth     = "health"
)

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{adapter: serverAdapter, out: out, logger: logger}
}

// Run expects <name> <password> <command> [arg]. The register command creates
// the account; every other command logs in first.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return ErrUsage
	}

	user := models.User{Name: args[0], Password: args[1]}
	command := args[2]
	arg := ""
	if len(args) == 4 {
		arg = args[3]
	}

	log := a.logger.With().Str("command", command).Logger()

	if command == CmdRegister {
		registered, err := a.adapter.Register(ctx, user)
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
		return a.print(registered)
	}

	if _, err := a.adapter.Login(ctx, user); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	log.Debug().Msg("logged in")

	result, err := a.execute(ctx, command, arg)
	if err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}

	return a.print(result)
}

func (a *App) execute(ctx context.Context, command, arg string) (any, error) {
	switch command {
	case CmdData:
		session, err := optionalID(arg)
		if err != nil {
			return nil, err
		}
		return a.adapter.GetUserData(ctx, session)
	case CmdEmail:
		if err := a.adapter.UpdateEmail(ctx, arg); err != nil {
			return nil, err
		}
		return map[string]string{"email": arg}, nil
	case CmdAPIs:
		return a.adapter.GetAPIs(ctx)
	case CmdMaps:
		return a.adapter.GetMaps(ctx)
	case CmdCharacters:
		return a.adapter.GetCharacters(ctx)
	case CmdMain:
		return a.adapter.GetMainCharacter(ctx)
	case CmdSetMain:
		characterID, err := optionalID(arg)
		if err != nil {
			return nil, err
		}
		if err = a.adapter.SetMainCharacter(ctx, characterID); err != nil {
			return nil, err
		}
		return a.adapter.GetMainCharacter(ctx)
	case CmdActive:
		session, err := optionalID(arg)
		if err != nil {
			return nil, err
		}
		return a.adapter.GetActiveCharacter(ctx, session)
	case CmdLogged:
		return a.adapter.GetLoggedCharacters(ctx)
	case CmdHealth:
		if err := a.adapter.Health(ctx); err != nil {
			return nil, err
		}
		return map[string]string{"status": "ok"}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) print(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

// optionalID parses a character id argument; empty means models.NoCharacter.
func optionalID(raw string) (int64, error) {
	if raw == "" {
		return models.NoCharacter, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < models.NoCharacter {
		return 0, fmt.Errorf("%w: %q", ErrInvalidArg, raw)
	}
	return id, nil
}
