package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/YelzhanWeb/foodorder/internal/adapter/logger"
	"github.com/YelzhanWeb/foodorder/internal/app/fooddetails"
	"github.com/YelzhanWeb/foodorder/internal/domain"
)

// FoodScreen is the controller driven by the session
type FoodScreen interface {
	Load(ctx context.Context) (fooddetails.View, error)
	View() (fooddetails.View, error)
	IncrementExtra(id int) (fooddetails.View, error)
	DecrementExtra(id int) (fooddetails.View, error)
	IncrementQuantity() (fooddetails.View, error)
	DecrementQuantity() (fooddetails.View, error)
	SubmitOrder(ctx context.Context) (domain.Order, error)
	Close()
}

const helpText = `comandos:
  +e <id>   adicionar extra
  -e <id>   remover extra
  +         mais uma unidade
  -         menos uma unidade
  fav       favoritar / desfavoritar
  order     confirmar pedido
  quit      sair`

// Session maps typed commands onto screen actions and redraws after each one
type Session struct {
	screen FoodScreen
	nav    *Navigator
	out    io.Writer
	logger logger.Logger
}

func NewSession(screen FoodScreen, nav *Navigator, out io.Writer, logger logger.Logger) *Session {
	return &Session{
		screen: screen,
		nav:    nav,
		out:    out,
		logger: logger,
	}
}

// Run loads the food and processes commands from in until quit, EOF or a
// successful order.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	defer s.screen.Close()

	view, err := s.screen.Load(ctx)
	if err != nil {
		s.logger.Error("session_load_failed", "Failed to open food details", "", nil, err)
		return err
	}
	s.render(view)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		done, err := s.handle(ctx, line)
		if err != nil {
			s.logger.Error("command_failed", "Command failed", "", map[string]interface{}{
				"command": line,
			}, err)
			fmt.Fprintf(s.out, "erro: %v\n", err)
		}
		if done {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (s *Session) handle(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)

	switch fields[0] {
	case "quit", "q":
		return true, nil

	case "help", "?":
		fmt.Fprintln(s.out, helpText)
		return false, nil

	case "+e", "-e":
		if len(fields) != 2 {
			return false, fmt.Errorf("uso: %s <id>", fields[0])
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, fmt.Errorf("id inválido %q", fields[1])
		}
		if fields[0] == "+e" {
			return false, s.apply(s.screen.IncrementExtra(id))
		}
		return false, s.apply(s.screen.DecrementExtra(id))

	case "+":
		return false, s.apply(s.screen.IncrementQuantity())

	case "-":
		return false, s.apply(s.screen.DecrementQuantity())

	case "fav":
		action := s.nav.HeaderAction()
		if action.OnPress == nil {
			return false, errors.New("nenhuma ação no cabeçalho")
		}
		err := action.OnPress(ctx)
		if view, viewErr := s.screen.View(); viewErr == nil {
			s.render(view)
		}
		return false, err

	case "order":
		if _, err := s.screen.SubmitOrder(ctx); err != nil {
			return false, err
		}
		return s.nav.Current() == fooddetails.OrdersScreen, nil
	}

	return false, fmt.Errorf("comando desconhecido %q, digite help", fields[0])
}

func (s *Session) apply(view fooddetails.View, err error) error {
	if err != nil {
		return err
	}
	s.render(view)
	return nil
}

func (s *Session) render(view fooddetails.View) {
	RenderFood(s.out, s.nav.HeaderAction(), view)
}
