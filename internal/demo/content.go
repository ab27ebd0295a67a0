package demo

import (
	"time"

	"github.com/porticus-lab/go-docproc/internal/ooxml"
	"github.com/porticus-lab/go-docproc/report"
)

var regionalSales = report.Table{
	Headers: []string{"Region", "Q1 ($k)", "Q2 ($k)", "Q3 ($k)", "Growth"},
	Rows: [][]string{
		{"North America", "1,240", "1,380", "1,520", "+10.1%"},
		{"Europe", "890", "920", "1,050", "+14.1%"},
		{"Asia Pacific", "670", "740", "810", "+9.5%"},
		{"Latin America", "310", "340", "370", "+8.8%"},
		{"Middle East", "180", "195", "220", "+12.8%"},
		{"TOTAL", "3,290", "3,575", "3,970", "+11.1%"},
	},
}

var productSales = report.Table{
	Headers: []string{"Product", "Units Sold", "Revenue ($k)", "Margin %"},
	Rows: [][]string{
		{"Software Licences", "4,200", "2,100", "82%"},
		{"Professional Services", "—", "980", "45%"},
		{"Hardware", "1,850", "620", "22%"},
		{"Support Contracts", "3,100", "270", "91%"},
	},
}

func textSample() *report.Spec {
	return &report.Spec{
		Title: "Annual Technology Report 2024",
		Plain: true,
		Sections: []report.Section{
			{
				Heading: "Executive Summary",
				Body: "This report summarises the key technology trends observed in 2024. " +
					"Artificial intelligence, cloud computing, and cybersecurity continue " +
					"to dominate investment priorities across all industry sectors. " +
					"Organisations that adopted automation early reported 35% higher " +
					"efficiency gains compared to late adopters. Python remains the most " +
					"popular language for data science and AI workloads for the fifth " +
					"consecutive year.",
			},
			{
				Heading: "Key Findings",
				Bullets: []string{
					"Cloud spending grew 28% year-over-year.",
					"78% of enterprises now use some form of AI/ML.",
					"Cybersecurity incidents increased by 14%.",
					"Remote work tooling investment stabilised after pandemic peaks.",
					"Open-source adoption reached an all-time high.",
				},
			},
			{
				Heading:         "Detailed Analysis",
				PageBreakBefore: true,
				Body: "The following sections provide a deep-dive into each technology " +
					"category. Data was collected from 1,200 organisations across " +
					"40 countries between January and October 2024. All monetary " +
					"figures are in USD unless otherwise stated.",
			},
		},
	}
}

func tableSample() *report.Spec {
	regional := regionalSales
	regional.Heading = "Regional Performance"
	regional.Caption = "Table 1: Quarterly revenue by region (USD thousands)"
	product := productSales
	product.Heading = "Product Category Breakdown"

	return &report.Spec{
		Title:  "Q3 2024 Sales Data",
		Plain:  true,
		Tables: []report.Table{regional, product},
	}
}

func glossarySample() *report.Spec {
	return &report.Spec{
		Title: "Appendix A: Glossary",
		Plain: true,
		Sections: []report.Section{{
			Body: "**AI** — Artificial Intelligence\n" +
				"**ML** — Machine Learning\n" +
				"**API** — Application Programming Interface\n" +
				"**SaaS** — Software as a Service\n" +
				"**OCR** — Optical Character Recognition",
		}},
	}
}

func docxSample(created time.Time) *ooxml.Document {
	return &ooxml.Document{
		Title:   "Sample Word Document",
		Creator: "PDF Processor Demo",
		Created: created,
		Paragraphs: []ooxml.Paragraph{
			{Style: ooxml.StyleTitle, Text: "Sample Word Document"},
			{Text: "This is a Word document generated for the demo. " +
				"The processor can read its content and convert it to PDF."},
			{Style: ooxml.StyleHeading1, Text: "Features"},
			{Style: ooxml.StyleBullet, Text: "Extract all paragraph text"},
			{Style: ooxml.StyleBullet, Text: "Convert to PDF report"},
			{Style: ooxml.StyleBullet, Text: "Works alongside PDF operations"},
		},
	}
}

func professionalReport(now time.Time) *report.Spec {
	regional := regionalSales
	regional.Heading = "Regional Sales Performance"
	regional.Caption = "Table 1 — Q1–Q3 2024 Revenue by Region (USD thousands)"
	product := productSales
	product.Heading = "Product Category Performance"
	product.Caption = "Table 2 — Q3 2024 Revenue by Product Category"

	return &report.Spec{
		Title:       "Annual Technology Report 2024",
		Subtitle:    "AI, Cloud & Cybersecurity Deep Dive",
		Author:      "PDF Processor Demo",
		GeneratedAt: now,
		Metadata: []report.Field{
			{Name: "Organisations surveyed", Value: "1,200"},
			{Name: "Countries", Value: "40"},
			{Name: "Period", Value: "January – October 2024"},
		},
		Sections: []report.Section{
			{
				Heading: "Executive Summary",
				Level:   1,
				Body: "This report summarises the major technology trends " +
					"across 1,200 organisations worldwide in 2024. " +
					"Artificial intelligence adoption reached an inflection " +
					"point, with 78% of enterprises now running at least one " +
					"production ML workload. Cloud spending grew 28% YoY.",
			},
			{
				Heading: "Key Highlights",
				Level:   1,
				Bullets: []string{
					"Cloud spending grew 28% year-over-year to $680 billion.",
					"78% of enterprises use AI/ML in production workloads.",
					"Cybersecurity incidents increased 14% globally.",
					"Open-source adoption reached an all-time high.",
					"Python retained its #1 data science language ranking.",
				},
			},
			{
				Heading: "Cloud Computing",
				Level:   2,
				Body: "Hyperscaler revenues (AWS, Azure, GCP) combined reached " +
					"$380 billion, representing 56% of total cloud spend. " +
					"Infrastructure-as-Code tooling became standard practice " +
					"in 91% of surveyed DevOps teams.",
			},
			{
				Heading: "Artificial Intelligence",
				Level:   2,
				Body: "Generative AI saw explosive growth with 340% more " +
					"enterprise pilot programmes in 2024 than 2023. " +
					"However, only 23% of pilots reached production, " +
					"highlighting the gap between experimentation and value " +
					"delivery.",
			},
		},
		Tables: []report.Table{regional, product},
		Summary: "2024 was a landmark year for enterprise technology adoption. " +
			"Organisations that invested in cloud-native architectures and " +
			"AI tooling outperformed peers by an average of 18% on key " +
			"efficiency metrics. The outlook for 2025 remains strong, with " +
			"continued growth in AI infrastructure and edge computing.",
	}
}
