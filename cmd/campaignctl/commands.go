package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"solidarity-campaign/internal/core/domain"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the total raised against the goal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.cancel()

		p := s.svc.Progress(s.ctx)
		fmt.Fprintf(cmd.OutOrStdout(), "raised:  %d\ngoal:    %d\npercent: %.4f\n", p.TotalRaised, p.Goal, p.Percent)
		return nil
	},
}

var completeAmount int64

var completeCmd = &cobra.Command{
	Use:   "complete <transaction-id>",
	Short: "Apply a confirmed checkout completion",
	Long: `Apply a checkout completion confirmed by the payment processor. The
transaction id is recorded in the completion ledger, so running the command
twice for the same id only counts once.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.cancel()

		p, duplicate, err := s.svc.RecordCompletion(s.ctx, args[0], completeAmount)
		if err != nil {
			return err
		}
		if duplicate {
			fmt.Fprintf(cmd.OutOrStdout(), "transaction %s already applied\n", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "raised: %d\n", p.TotalRaised)
		return nil
	},
}

var interceptCmd = &cobra.Command{
	Use:   "intercept <page-url>",
	Short: "Simulate a page load and fold a checkout marker into the total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := url.Parse(args[0])
		if err != nil {
			return fmt.Errorf("parse page url: %w", err)
		}
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.cancel()

		page := s.svc.OpenPage(s.ctx, u)
		if page.Redirect == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "no completion marker")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "marker consumed, replace url with %s\n", page.Redirect)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "raised: %d\n", page.Progress.TotalRaised)
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [video-url...]",
	Short: "Resolve video links to embed URLs (the catalogue when no link is given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.cancel()

		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, v := range s.svc.Videos() {
				fmt.Fprintf(out, "%s\t%s\t%s\n", v.Reference.CanonicalID, v.Reference.EmbedURL, v.Entry.Title)
			}
			return nil
		}

		failed := 0
		for _, a := range args {
			ref := s.svc.ResolveVideo(a)
			if !ref.Resolved() {
				failed++
				fmt.Fprintf(out, "%s\tabsent\n", strconv.Quote(a))
				continue
			}
			fmt.Fprintf(out, "%s\t%s\n", ref.CanonicalID, ref.EmbedURL)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d links: %w", failed, len(args), domain.ErrUnresolvable)
		}
		return nil
	},
}

var (
	referralOrigin string
	referralShare  bool
)

var referralCmd = &cobra.Command{
	Use:   "referral",
	Short: "Generate the referral link and optionally share it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if referralOrigin == "" {
			return fmt.Errorf("--origin is required")
		}
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.cancel()

		out := cmd.OutOrStdout()
		link := s.svc.GenerateReferral(referralOrigin)
		fmt.Fprintln(out, link.Link)
		if !referralShare {
			return nil
		}

		res := s.svc.Share(s.ctx, domain.ShareCapabilities{}, link, referralOrigin)
		if res.Status == domain.ShareStatusFallback {
			fmt.Fprintln(out, res.Notice)
			return nil
		}
		// No clipboard: print the message so it can be pasted by hand.
		fmt.Fprintln(out, res.Message.Text)
		return nil
	},
}

func init() {
	completeCmd.Flags().Int64Var(&completeAmount, "amount", 0, "Amount reported by the processor (0 uses the configured increment)")
	referralCmd.Flags().StringVar(&referralOrigin, "origin", "", "Deployment origin, e.g. https://example.org")
	referralCmd.Flags().BoolVar(&referralShare, "share", false, "Copy the share message to the system clipboard")
}
