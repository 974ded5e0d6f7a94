package models

// DefaultFAQ is the knowledge base seeded into an empty store.
var DefaultFAQ = []FAQEntry{
	{
		Slug:     "vip-requirements",
		Question: "What do I need for Deriv VIP?",
		Answer: "A Deriv account opened through our affiliate link, old enough to qualify, " +
			"and a deposit of at least $50 USD. Start the verification from /start.",
	},
	{
		Slug:     "mentorship",
		Question: "How does the free mentorship work?",
		Answer: "Open a Deriv account via our link, send us your CR number (or 'done' to skip), " +
			"then upload your deposit screenshot. A mentor contacts you within 24 hours.",
	},
	{
		Slug:     "tagging",
		Question: "My CR number is not recognized. What now?",
		Answer: "Your account is probably not tagged under our partnership yet. Follow the " +
			"tagging guide from the main menu and retry after 24 hours.",
	},
	{
		Slug:     "ticket-status",
		Question: "How do I check my request status?",
		Answer:   "Open /start and tap My Tickets to see your last requests and their status.",
	},
}
