// Package faq holds the storefront's frequently asked questions in both
// display languages.
package faq

// Entry is one question/answer pair rendered on the FAQ page.
type Entry struct {
	Question string
	Answer   string
}

type item struct {
	qAR, qEN string
	aAR, aEN string
}

var items = []item{
	{
		qAR: "كيف أقوم بتقديم طلب؟",
		qEN: "How do I place an order?",
		aAR: "تصفح المجموعات أو التصنيفات، أضف المنتجات إلى السلة، ثم أكمل خطوات الدفع.",
		aEN: "Browse the collections or categories, add products to your cart, then follow the checkout steps.",
	},
	{
		qAR: "ما هي مدة التوصيل؟",
		qEN: "How long does delivery take?",
		aAR: "تصل معظم الطلبات داخل المملكة خلال 2 إلى 5 أيام عمل.",
		aEN: "Most orders inside Saudi Arabia arrive within 2 to 5 business days.",
	},
	{
		qAR: "هل يمكنني استرجاع منتج؟",
		qEN: "Can I return a product?",
		aAR: "نعم، خلال 14 يومًا من الاستلام وفق سياسة الاسترجاع.",
		aEN: "Yes, within 14 days of receipt under the returns policy.",
	},
	{
		qAR: "ما طرق الدفع المتاحة؟",
		qEN: "Which payment methods are available?",
		aAR: "نقبل مدى وفيزا وماستركارد وApple Pay والدفع عند الاستلام.",
		aEN: "We accept mada, Visa, Mastercard, Apple Pay, and cash on delivery.",
	},
	{
		qAR: "كيف أتابع حالة طلبي؟",
		qEN: "How do I track my order?",
		aAR: "نرسل رسالة نصية وبريدًا إلكترونيًا برابط التتبع فور شحن الطلب.",
		aEN: "We send an SMS and email with a tracking link as soon as the order ships.",
	},
	{
		qAR: "هل تتوفر خدمة عملاء؟",
		qEN: "Is customer support available?",
		aAR: "فريق الدعم متاح يوميًا من 9 صباحًا حتى 11 مساءً عبر الدردشة والبريد.",
		aEN: "Support is available daily from 9am to 11pm over chat and email.",
	},
}

// List returns the FAQ entries localized for lang.
func List(lang string) []Entry {
	out := make([]Entry, 0, len(items))
	for _, it := range items {
		if lang == "en" {
			out = append(out, Entry{Question: it.qEN, Answer: it.aEN})
		} else {
			out = append(out, Entry{Question: it.qAR, Answer: it.aAR})
		}
	}
	return out
}
