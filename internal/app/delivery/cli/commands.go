package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"odontocare-client/internal/app/services/core/screens"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"
	"odontocare-client/internal/pkg/utils"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrActionFailed is returned once the failure was already shown as a
// notification, so main only has to set the exit code.
var ErrActionFailed = errors.New("action failed")

type AppFactory func(ctx context.Context, out io.Writer) (*App, error)

func NewRootCommand(factory AppFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "odontocare",
		Short:         "OdontoCare patient client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(loginCmd(factory))
	rootCmd.AddCommand(logoutCmd(factory))
	rootCmd.AddCommand(registerCmd(factory))
	rootCmd.AddCommand(whoamiCmd(factory))
	rootCmd.AddCommand(menuCmd(factory))
	rootCmd.AddCommand(appointmentsCmd(factory))
	rootCmd.AddCommand(alertsCmd(factory))
	rootCmd.AddCommand(profileCmd(factory))

	return rootCmd
}

// run builds an app for one command, restores the session, runs action and
// prints where the screen wanted to go next.
func run(cmd *cobra.Command, factory AppFactory, action func(ctx context.Context, app *App) error) error {
	ctx := utils.NewRequestContext(cmd.Context())

	app, err := factory(ctx, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer app.Close(ctx)
	app.Start(ctx)

	err = action(ctx, app)
	renderHint(app.Out, app.Navigator.Last())
	if err != nil {
		app.Log.Error("cli command failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String("command", cmd.CommandPath()),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrActionFailed, err)
	}
	return nil
}

// redirected reports whether the focused screen sent the user to login.
func redirected(app *App) bool {
	return app.Navigator.Last() == constvars.RouteLogin
}

func loginCmd(factory AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				password = prompt(cmd, "Password: ")
			}

			return run(cmd, factory, func(ctx context.Context, app *App) error {
				controller := screens.NewLoginController(app.Dependencies())
				if err := controller.Focus(ctx); err != nil {
					return err
				}
				if app.Navigator.Last() == constvars.RouteHome {
					fmt.Fprintf(app.Out, "Already logged in as %s. Run odontocare logout first to switch accounts.\n", app.Session.Current().User.Email)
					return nil
				}

				if err := controller.Submit(ctx, email, password); err != nil {
					return err
				}
				fmt.Fprintf(app.Out, "Welcome, %s.\n", app.Session.Current().User.Name)
				return nil
			})
		},
	}
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password, prompted when empty")
	return cmd
}

func logoutCmd(factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, factory, func(ctx context.Context, app *App) error {
				controller := screens.NewProfileController(app.Dependencies(), app.ActivityAPIClient)
				if err := controller.Logout(ctx); err != nil {
					return err
				}
				fmt.Fprintln(app.Out, "Logged out.")
				return nil
			})
		},
	}
}

func registerCmd(factory AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a patient account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := requests.RegistrationForm{}
			form.Name, _ = cmd.Flags().GetString("name")
			form.Email, _ = cmd.Flags().GetString("email")
			form.Password, _ = cmd.Flags().GetString("password")
			form.ConfirmPassword, _ = cmd.Flags().GetString("confirm-password")
			form.BirthDate, _ = cmd.Flags().GetString("birth-date")
			form.Phone, _ = cmd.Flags().GetString("phone")

			return run(cmd, factory, func(ctx context.Context, app *App) error {
				controller := screens.NewRegistrationController(app.Dependencies(), app.AuthAPIClient, app.PatientAPIClient)
				if err := controller.Focus(ctx); err != nil {
					return err
				}
				return controller.Submit(ctx, form)
			})
		},
	}
	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("email", "", "Email")
	cmd.Flags().String("password", "", "Password")
	cmd.Flags().String("confirm-password", "", "Password again")
	cmd.Flags().String("birth-date", "", "Birth date, DD/MM/YYYY")
	cmd.Flags().String("phone", "", "Phone number")
	return cmd
}

func whoamiCmd(factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, factory, func(ctx context.Context, app *App) error {
				current := app.Session.Current()
				if current == nil {
					app.Navigator.Navigate(constvars.RouteLogin)
					return nil
				}

				expiry := "unknown"
				if expiresAt, ok := app.Session.TokenExpiry(); ok {
					expiry = expiresAt.Format(constvars.LayoutDisplayDateTime)
				}
				renderWhoami(app.Out, current, expiry)
				return nil
			})
		},
	}
}

func menuCmd(factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "menu [screen]",
		Short: "List the app features, or open one of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, factory, func(ctx context.Context, app *App) error {
				controller := screens.NewHomeController(app.Dependencies())
				if err := controller.Focus(ctx); err != nil || redirected(app) {
					return err
				}
				if len(args) == 1 {
					return controller.Open(ctx, args[0])
				}
				renderMenu(app.Out, controller.State(), controller.Items())
				return nil
			})
		},
	}
}

func appointmentsCmd(factory AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "Book and manage appointments",
	}

	focused := func(ctx context.Context, app *App) (*screens.AppointmentsController, bool, error) {
		controller := screens.NewAppointmentsController(app.Dependencies(), app.AppointmentAPIClient)
		err := controller.Focus(ctx)
		return controller, err == nil && !redirected(app), err
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List appointments and the calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, factory, func(ctx context.Context, app *App) error {
				controller, ok, err := focused(ctx, app)
				if !ok {
					return err
				}
				state := controller.State()
				renderAppointments(app.Out, state)
				renderCalendar(app.Out, state.Marks)
				return nil
			})
		},
	})

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Book an appointment at noon on the given day",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			appointmentType, _ := cmd.Flags().GetString("type")
			notes, _ := cmd.Flags().GetString("notes")
			if iso, ok := utils.BrazilianDateToISO(date); ok {
				date = iso
			}

			return run(cmd, factory, func(ctx context.Context, app *App) error {
				controller, ok, err := focused(ctx, app)
				if !ok {
					return err
				}

				controller.OpenNewAppointment()
				if date != "" {
					if err := controller.SelectDate(date); err != nil {
						return err
					}
				}
				if appointmentType != "" {
					controller.SetType(appointmentType)
				}
				controller.SetNotes(notes)

				if err := controller.Confirm(ctx); err != nil {
					return err
				}
				renderAppointments(app.Out, controller.State())
				return nil
			})
		},
	}
	newCmd.Flags().String("date", "", "Day, YYYY-MM-DD or DD/MM/YYYY")
	newCmd.Flags().String("type", "", "Appointment type (default \""+constvars.DefaultAppointmentType+"\")")
	newCmd.Flags().String("notes", "", "Notes for the clinic")
	cmd.AddCommand(newCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a scheduled or confirmed appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appointmentID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid appointment id %q", args[0])
			}

			return run(cmd, factory, func(ctx context.Context, app *App) error {
				controller, ok, err := focused(ctx, app)
				if !ok {
					return err
				}
				if err := controller.Cancel(ctx, appointmentID); err != nil {
					return err
				}
				renderAppointments(app.Out, controller.State())
				return nil
			})
		},
	})

	return cmd
}

func alertsCmd(factory AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Read messages from the clinic",
	}

	withAlerts := func(action func(ctx context.Context, controller *screens.AlertsController) error) func(ctx context.Context, app *App) error {
		return func(ctx context.Context, app *App) error {
			controller := screens.NewAlertsController(app.Dependencies(), app.AlertAPIClient)
			if err := controller.Focus(ctx); err != nil || redirected(app) {
				return err
			}
			if err := action(ctx, controller); err != nil {
				return err
			}
			renderAlerts(app.Out, controller.State(), controller.UnreadCount())
			return nil
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List alerts, unread first marked with *",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, factory, withAlerts(func(ctx context.Context, controller *screens.AlertsController) error {
				return nil
			}))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "read <id>",
		Short: "Mark one alert as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alertID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid alert id %q", args[0])
			}
			return run(cmd, factory, withAlerts(func(ctx context.Context, controller *screens.AlertsController) error {
				return controller.MarkAsRead(ctx, alertID)
			}))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "read-all",
		Short: "Mark every alert as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, factory, withAlerts(func(ctx context.Context, controller *screens.AlertsController) error {
				if !controller.CanMarkAll() {
					return nil
				}
				return controller.MarkAllAsRead(ctx)
			}))
		},
	})

	return cmd
}

func profileCmd(factory AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Patient data, points and the daily checklist",
	}

	withProfile := func(action func(ctx context.Context, controller *screens.ProfileController) error) func(ctx context.Context, app *App) error {
		return func(ctx context.Context, app *App) error {
			controller := screens.NewProfileController(app.Dependencies(), app.ActivityAPIClient)
			if err := controller.Focus(ctx); err != nil || redirected(app) {
				return err
			}
			if err := action(ctx, controller); err != nil {
				return err
			}
			renderProfile(app.Out, controller.State(), controller.Disabled)
			return nil
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the patient card and today's checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, factory, withProfile(func(ctx context.Context, controller *screens.ProfileController) error {
				return nil
			}))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "check <slot>",
		Short:     "Tick one checklist entry: breakfast, lunch, dinner, checkup or cleaning",
		Args:      cobra.ExactArgs(1),
		ValidArgs: slotNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, factory, withProfile(func(ctx context.Context, controller *screens.ProfileController) error {
				return controller.Check(ctx, screens.ActivitySlot(args[0]))
			}))
		},
	})

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Change contact details; only the given flags are sent",
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := requests.PatientPatch{}
			if cmd.Flags().Changed("name") {
				value, _ := cmd.Flags().GetString("name")
				patch.Name = &value
			}
			if cmd.Flags().Changed("phone") {
				value, _ := cmd.Flags().GetString("phone")
				patch.Phone = &value
			}
			if cmd.Flags().Changed("address") {
				value, _ := cmd.Flags().GetString("address")
				patch.Address = &value
			}
			if cmd.Flags().Changed("birth-date") {
				value, _ := cmd.Flags().GetString("birth-date")
				if iso, ok := utils.BrazilianDateToISO(value); ok {
					value = iso
				}
				patch.BirthDate = &value
			}

			return run(cmd, factory, withProfile(func(ctx context.Context, controller *screens.ProfileController) error {
				return controller.UpdateContact(ctx, patch)
			}))
		},
	}
	updateCmd.Flags().String("name", "", "Full name")
	updateCmd.Flags().String("phone", "", "Phone number")
	updateCmd.Flags().String("address", "", "Address")
	updateCmd.Flags().String("birth-date", "", "Birth date, DD/MM/YYYY")
	cmd.AddCommand(updateCmd)

	return cmd
}

func slotNames() []string {
	names := make([]string, 0, len(screens.ActivitySlots))
	for _, definition := range screens.ActivitySlots {
		names = append(names, string(definition.Slot))
	}
	return names
}

func prompt(cmd *cobra.Command, label string) string {
	fmt.Fprint(cmd.OutOrStdout(), label)
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}
