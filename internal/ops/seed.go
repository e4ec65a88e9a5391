// Copyright (c) 2026 Avironin. All rights reserved.

package ops

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avironin/insight-api/internal/core/author"
	"github.com/avironin/insight-api/internal/core/post"
	"github.com/avironin/insight-api/pkg/uuid"
)

// seedAuthor is the house byline attached to all demonstration content.
var seedAuthor = author.Author{
	Name:      "Avironin Research",
	Role:      "Strategic Foresight Group",
	Bio:       "The Strategic Foresight Group at Avironin focuses on the long-term architectural shifts in technical business models and emerging cognitive systems.",
	AvatarURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&q=80&w=200",
	SocialLinks: map[string]string{
		"twitter":  "https://twitter.com",
		"linkedin": "https://linkedin.com",
	},
}

var seedPosts = []post.Post{
	{
		Title: "The Architecture of Autonomous AI Agents",
		Slug:  "architecture-autonomous-ai-agents",
		Content: `<p>As we witness the emergence of autonomous AI agents, understanding their architectural foundations becomes crucial for any technology leader.</p>
<h2>The Three Pillars of Agent Architecture</h2>
<p>Every successful AI agent is built on three fundamental pillars: perception, reasoning, and action. The perception layer handles input processing and context understanding. The reasoning layer implements decision-making logic, often leveraging large language models. The action layer executes decisions and interacts with external systems.</p>`,
		Summary:     "A deep dive into the architectural patterns that power modern autonomous AI agents and their implications for enterprise software.",
		Category:    post.CategoryAISystems,
		ContentType: post.TypeEssay,
		Published:   true,
		Featured:    true,
		ReadTime:    12,
		ImageURL:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?auto=format&fit=crop&q=80&w=800",
	},
	{
		Title: "Modular Monolith: The Middle Ground Architecture",
		Slug:  "modular-monolith-architecture",
		Content: `<p>The eternal debate between monoliths and microservices often overlooks a powerful middle ground: the modular monolith.</p>
<h2>Why Modular Monoliths Work</h2>
<p>Startups often rush to microservices too early, incurring operational complexity before they understand their domain boundaries. A modular monolith allows you to define clear module boundaries while maintaining a single deployment unit.</p>`,
		Summary:     "Exploring the modular monolith pattern as a pragmatic choice for startups navigating between monolithic and microservices architectures.",
		Category:    post.CategoryTechnology,
		ContentType: post.TypeEssay,
		Published:   true,
		Featured:    true,
		ReadTime:    15,
		ImageURL:    "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?auto=format&fit=crop&q=80&w=800",
	},
	{
		Title: "Network Effects in AI Platform Businesses",
		Slug:  "network-effects-ai-platforms",
		Content: `<p>Platform businesses have long leveraged network effects, but AI introduces a new dimension: data network effects.</p>
<h2>Traditional vs Data Network Effects</h2>
<p>Traditional network effects grow with user count. Data network effects grow with data quality and diversity. An AI platform that improves with every user interaction creates a compounding advantage.</p>`,
		Summary:     "How AI platforms leverage data network effects to build sustainable competitive advantages in the modern technology landscape.",
		Category:    post.CategoryStrategy,
		ContentType: post.TypeEssay,
		Published:   true,
		Featured:    true,
		ReadTime:    10,
		ImageURL:    "https://images.unsplash.com/photo-1639322537228-f710d846310a?auto=format&fit=crop&q=80&w=800",
	},
	{
		Title: "5 Lessons from Scaling Our Engineering Team to 50",
		Slug:  "lessons-scaling-engineering-team",
		Content: `<p>Scaling an engineering team is more art than science. Here are five hard-won lessons from growing our team from 5 to 50 engineers over 18 months.</p>
<h2>1. Hire for Culture, Train for Skills</h2>
<p>Technical skills can be taught. Cultural alignment cannot.</p>
<h2>2. Documentation is Infrastructure</h2>
<p>At 10 engineers, tribal knowledge works. At 50, it's a bottleneck.</p>`,
		Summary:     "Practical lessons learned from rapidly scaling an engineering organization while maintaining culture and velocity.",
		Category:    post.CategoryStartupStrategy,
		ContentType: post.TypeBlog,
		Published:   true,
		ReadTime:    6,
		ImageURL:    "https://images.unsplash.com/photo-1522071820081-009f0129c71c?auto=format&fit=crop&q=80&w=800",
	},
	{
		Title: "Why We Moved from Next.js to Remix",
		Slug:  "nextjs-to-remix-migration",
		Content: `<p>After two years on Next.js, we made the decision to migrate to Remix. Here's why, and what we learned in the process.</p>
<h2>What Remix Solved</h2>
<p>Remix's loader/action pattern enforced consistency. The nested routing model matched our UI hierarchy perfectly. Our Core Web Vitals improved by 40%.</p>`,
		Summary:     "Our journey from Next.js to Remix, including the challenges faced and performance improvements gained.",
		Category:    post.CategoryTechnology,
		ContentType: post.TypeBlog,
		Published:   true,
		ReadTime:    8,
		ImageURL:    "https://images.unsplash.com/photo-1555066931-4365d14bab8c?auto=format&fit=crop&q=80&w=800",
	},
	{
		Title: "The Rise of Vertical AI Agents",
		Slug:  "rise-vertical-ai-agents",
		Content: `<p>While general-purpose AI assistants grab headlines, the real value creation is happening in vertical-specific agents.</p>
<h2>Domain Expertise Matters</h2>
<p>A legal AI that understands contract law deeply outperforms a general AI every time. Vertical specialization creates moats through accumulated domain knowledge.</p>`,
		Summary:     "Why industry-specific AI agents are outperforming general-purpose solutions and where the opportunities lie.",
		Category:    post.CategoryAISystems,
		ContentType: post.TypeBlog,
		Published:   true,
		ReadTime:    5,
		ImageURL:    "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?auto=format&fit=crop&q=80&w=800",
	},
	{
		Title: "State of AI Infrastructure 2026",
		Slug:  "state-ai-infrastructure-2026",
		Content: `<h1>State of AI Infrastructure 2026</h1>
<h2>Executive Summary</h2>
<p>The AI infrastructure landscape has undergone dramatic transformation in the past year. This report examines the key trends, technologies, and strategic considerations for organizations building AI-native applications.</p>
<h2>Key Findings</h2>
<ul>
<li>GPU costs have decreased 40% while performance increased 60%</li>
<li>Edge AI deployment grew 300% year-over-year</li>
<li>Open-source models now match proprietary performance in 80% of use cases</li>
</ul>`,
		Summary:     "Comprehensive analysis of the AI infrastructure landscape with key trends, market data, and strategic recommendations for 2026.",
		Category:    post.CategoryResearch,
		ContentType: post.TypeWhitepaper,
		Published:   true,
		ReadTime:    25,
		ImageURL:    "https://images.unsplash.com/photo-1518770660439-4636190af475?auto=format&fit=crop&q=80&w=800",
	},
	{
		Title: "Framework: Building Products with AI-First Design",
		Slug:  "framework-ai-first-product-design",
		Content: `<h1>AI-First Product Design Framework</h1>
<h2>Introduction</h2>
<p>Traditional product design methodologies were created for deterministic software. AI products require a fundamentally different approach that accounts for probabilistic outputs and continuous learning.</p>
<h2>The ADAPT Framework</h2>
<p>Augment, don't replace. Design for uncertainty. Allow human override. Plan for improvement. Test continuously.</p>`,
		Summary:     "A comprehensive framework for designing products that leverage AI capabilities while maintaining user trust and control.",
		Category:    post.CategoryFrameworks,
		ContentType: post.TypeWhitepaper,
		Published:   true,
		ReadTime:    30,
		ImageURL:    "https://images.unsplash.com/photo-1581291518633-83b4ebd1d83e?auto=format&fit=crop&q=80&w=800",
	},
	{
		Title: "Technical Due Diligence for AI Startups",
		Slug:  "technical-due-diligence-ai-startups",
		Content: `<h1>Technical Due Diligence for AI Startups</h1>
<h2>Overview</h2>
<p>Investing in AI startups requires specialized technical evaluation that goes beyond traditional software due diligence.</p>
<h2>Key Evaluation Areas</h2>
<p>Data moat assessment, model architecture review, infrastructure scalability, and team capability.</p>
<h2>Red Flags</h2>
<ul>
<li>Over-reliance on third-party APIs without proprietary value-add</li>
<li>Lack of evaluation metrics or benchmarking</li>
</ul>`,
		Summary:     "A comprehensive guide for investors conducting technical due diligence on AI-native startups.",
		Category:    post.CategoryStrategy,
		ContentType: post.TypeWhitepaper,
		Published:   true,
		ReadTime:    20,
		ImageURL:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&q=80&w=800",
	},
}

/*
Seed loads demonstration content: one house author plus a set of essays,
blog articles, and white papers.

The author is resolved by exact name before anything is created, and posts
are upserted by slug, so repeated runs refresh the sample content without
duplicating rows.
*/
func (runner *Runner) Seed(context context.Context) error {
	byline := seedAuthor
	resolved, err := runner.authors.FindOrCreate(context, &byline)
	if err != nil {
		return fmt.Errorf("ops: seed author resolution failed: %w", err)
	}

	runner.logger.Info("seed_author_resolved",
		slog.String("author_id", resolved.ID.String()),
		slog.String("name", resolved.Name),
	)

	counts := map[post.ContentType]int{}
	for _, seed := range seedPosts {
		record := seed
		record.ID = uuid.New()
		record.AuthorID = &resolved.ID

		if err := runner.posts.UpsertBySlug(context, &record); err != nil {
			return fmt.Errorf("ops: seed post %q failed: %w", record.Slug, err)
		}

		counts[record.ContentType]++
		runner.logger.Info("seed_post_upserted",
			slog.String("slug", record.Slug),
			slog.String("content_type", string(record.ContentType)),
		)
	}

	runner.logger.Info("seed_complete",
		slog.Int("essays", counts[post.TypeEssay]),
		slog.Int("blogs", counts[post.TypeBlog]),
		slog.Int("whitepapers", counts[post.TypeWhitepaper]),
	)
	return nil
}
