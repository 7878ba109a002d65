// Package membersdk is the Go client of the Lubana membership service and
// holds the JSON wire types shared with the server.
//
// Unauthenticated calls go through a Client:
//
//	c := membersdk.NewClient("https://members.lubana.example")
//	plans, err := c.Plans(ctx)
//
// Login returns a Session that carries the bearer token:
//
//	s, err := c.Login(ctx, "budi", "secret password")
//	reg, err := s.CreateRegistration(ctx, membersdk.CreateRegistrationRequest{
//		MembershipType: "vip",
//		DurationMonths: 12,
//	})
//
// Front desk staff validate the scanned code and activate it:
//
//	reg, err := staff.ValidateRegistration(ctx, scanned)
//	act, err := staff.ActivateRegistration(ctx, reg.ID)
//
// Failed calls return an *APIError; use IsCode to branch on its code.
package membersdk
