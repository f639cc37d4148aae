// Package salesdk is a typed HTTP client for the vendas service.
//
// The zero-dependency types double as the wire contract for the server
// handlers, so the SDK and the service can never drift apart.
//
// Usage:
//
//	sdk := salesdk.NewSDKClient("http://localhost:8080")
//
//	account, err := sdk.Register(ctx, salesdk.CreateClientRequest{
//		Name:     "Ana",
//		Email:    "ana@example.com",
//		Password: "s3cret-pw",
//	})
//
//	session, err := sdk.Login(ctx, "ana@example.com", "s3cret-pw")
//	sale, err := session.CreateSale(ctx, salesdk.CreateSaleRequest{
//		ClientID:   account.ID,
//		ProductIDs: []int64{1, 2},
//	})
package salesdk
