// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package i18n

// messages contains all translations keyed by language code.
//
//nolint:gochecknoglobals,gosmopolitan // immutable translation map with CJK characters
var messages = map[string]map[string]string{
	LangEN: {
		// Navigation
		"nav_home":        "Home",
		"nav_tours":       "Tours",
		"nav_exhibitions": "Exhibitions",
		"nav_about":       "About",
		"nav_contact":     "Contact",
		"nav_language":    "Language",
		"footer_rights":   "All rights reserved.",
		"footer_contact":  "Get in touch",
		"footer_follow":   "Follow us",

		// Home
		"home_title":           "Discover China with local experts",
		"home_lead":            "Private tours, trade-fair travel and tailor-made itineraries across China.",
		"home_cta_tours":       "Browse tours",
		"home_cta_contact":     "Plan your trip",
		"home_services_title":  "What we do",
		"service_tours_title":  "Guided tours",
		"service_tours_text":   "Small-group and private tours led by licensed bilingual guides.",
		"service_expo_title":   "Exhibition services",
		"service_expo_text":    "Canton Fair and trade-show travel: visas, hotels, interpreters and transfers.",
		"service_custom_title": "Custom journeys",
		"service_custom_text":  "Itineraries built around your dates, interests and budget.",
		"home_featured":        "Featured this season",

		// Listings
		"tours_title":        "Tours",
		"tours_lead":         "Hand-picked routes from the Great Wall to the Li River.",
		"exhibitions_title":  "Exhibitions",
		"exhibitions_lead":   "Travel packages for China's major fairs and expos.",
		"filter_label":       "Filter:",
		"filter_all":         "All",
		"empty_filtered":     "Nothing matches tag %s",
		"empty_default":      "New dates are coming soon.",
		"duration_label":     "Duration:",
		"price_label":        "From",
		"destinations_label": "Destinations:",
		"enquire_btn":        "Enquire",

		// About
		"about_title": "About us",
		"about_p1":    "We are a small team of travel professionals based in Beijing and Guangzhou.",
		"about_p2":    "Since 2010 we have guided travellers and trade delegations to every corner of China.",
		"about_p3":    "Every itinerary is planned by people who live here and know the places first-hand.",

		// Contact page
		"contact_title":         "Contact us",
		"contact_lead":          "Tell us about your plans and we will reply within one business day.",
		"contact_info_title":    "Contact information",
		"contact_email_label":   "Email",
		"contact_phone_label":   "Phone",
		"contact_address_label": "Address",
		"contact_hours_label":   "Office hours",
		"faq_title":             "Frequently asked questions",
		"faq_1_q":               "Do I need a visa to visit China?",
		"faq_1_a":               "Many nationalities qualify for visa-free transit or entry; we confirm the rules for your passport when you book.",
		"faq_2_q":               "Can you arrange Canton Fair registration?",
		"faq_2_a":               "Yes. We handle buyer badges, hotels near the venue and interpreters.",
		"faq_3_q":               "Are tours private?",
		"faq_3_a":               "Both private and small-group departures are available.",
		"faq_4_q":               "Which payment methods do you accept?",
		"faq_4_a":               "Bank transfer and major credit cards.",

		// Contact form
		"form_name":                    "Name",
		"form_email":                   "Email",
		"form_subject":                 "Subject",
		"form_message":                 "Message",
		"form_submit":                  "Send message",
		"subject_":                     "Select a subject",
		"subject_tour":                 "Tour booking",
		"subject_exhibition":           "Exhibition services",
		"subject_custom":               "Custom journey",
		"subject_general":              "General question",
		"subject_other":                "Other",
		"contact_err_name_required":    "Name is required",
		"contact_err_email_required":   "Email is required",
		"contact_err_email_invalid":    "Email is not valid",
		"contact_err_subject_required": "Subject is required",
		"contact_err_message_required": "Message is required",
		"contact_success":              "Thank you for your message! We will get back to you soon.",

		// Not found
		"notfound_title": "Page not found",
		"notfound_text":  "The page you are looking for does not exist.",
		"notfound_home":  "Back to home",

		// Error messages
		"err_list_listings": "Failed to load listings",
		"err_render":        "Failed to render template",
		"err_invalid_form":  "Invalid form data",
		"err_unknown_field": "Unknown form field",
		"err_rate_limit":    "Too many requests",
	},
	LangZH: {
		// Navigation
		"nav_home":        "首页",
		"nav_tours":       "旅游线路",
		"nav_exhibitions": "展会服务",
		"nav_about":       "关于我们",
		"nav_contact":     "联系我们",
		"nav_language":    "语言",
		"footer_rights":   "版权所有。",
		"footer_contact":  "联系方式",
		"footer_follow":   "关注我们",

		// Home
		"home_title":           "与本地专家一起探索中国",
		"home_lead":            "私人定制游、展会商旅以及覆盖全国的个性化行程。",
		"home_cta_tours":       "浏览线路",
		"home_cta_contact":     "规划行程",
		"home_services_title":  "我们的服务",
		"service_tours_title":  "导览游",
		"service_tours_text":   "由持证双语导游带领的小团及私人游。",
		"service_expo_title":   "展会服务",
		"service_expo_text":    "广交会及各类展会出行：签证、酒店、翻译与接送。",
		"service_custom_title": "定制旅程",
		"service_custom_text":  "根据您的日期、兴趣和预算量身打造行程。",
		"home_featured":        "本季推荐",

		// Listings
		"tours_title":        "旅游线路",
		"tours_lead":         "从长城到漓江的精选路线。",
		"exhibitions_title":  "展会服务",
		"exhibitions_lead":   "中国主要展会与博览会的出行套餐。",
		"filter_label":       "筛选：",
		"filter_all":         "全部",
		"empty_filtered":     "没有匹配标签 %s 的项目",
		"empty_default":      "新的日期即将公布。",
		"duration_label":     "时长：",
		"price_label":        "起价",
		"destinations_label": "目的地：",
		"enquire_btn":        "咨询",

		// About
		"about_title": "关于我们",
		"about_p1":    "我们是一支驻扎在北京和广州的小型旅游专业团队。",
		"about_p2":    "自 2010 年以来，我们已带领众多游客和商务代表团走遍中国各地。",
		"about_p3":    "每一条行程都由在这里生活、熟悉当地的人亲自规划。",

		// Contact page
		"contact_title":         "联系我们",
		"contact_lead":          "告诉我们您的计划，我们将在一个工作日内回复。",
		"contact_info_title":    "联系信息",
		"contact_email_label":   "邮箱",
		"contact_phone_label":   "电话",
		"contact_address_label": "地址",
		"contact_hours_label":   "办公时间",
		"faq_title":             "常见问题",
		"faq_1_q":               "去中国需要签证吗？",
		"faq_1_a":               "许多国家的公民可享受免签过境或入境政策；预订时我们会根据您的护照确认具体规定。",
		"faq_2_q":               "可以代办广交会注册吗？",
		"faq_2_a":               "可以。我们负责采购商证件、展馆附近的酒店以及翻译。",
		"faq_3_q":               "线路是私人团吗？",
		"faq_3_a":               "私人团和小团出发均可选择。",
		"faq_4_q":               "支持哪些付款方式？",
		"faq_4_a":               "银行转账及主流信用卡。",

		// Contact form
		"form_name":                    "姓名",
		"form_email":                   "邮箱",
		"form_subject":                 "主题",
		"form_message":                 "留言",
		"form_submit":                  "发送留言",
		"subject_":                     "请选择主题",
		"subject_tour":                 "线路预订",
		"subject_exhibition":           "展会服务",
		"subject_custom":               "定制旅程",
		"subject_general":              "一般咨询",
		"subject_other":                "其他",
		"contact_err_name_required":    "请填写姓名",
		"contact_err_email_required":   "请填写邮箱",
		"contact_err_email_invalid":    "邮箱格式不正确",
		"contact_err_subject_required": "请选择主题",
		"contact_err_message_required": "请填写留言",
		"contact_success":              "感谢您的留言！我们会尽快与您联系。",

		// Not found
		"notfound_title": "页面未找到",
		"notfound_text":  "您访问的页面不存在。",
		"notfound_home":  "返回首页",

		// Error messages
		"err_list_listings": "无法加载列表",
		"err_render":        "渲染失败",
		"err_invalid_form":  "表单数据无效",
		"err_unknown_field": "未知的表单字段",
		"err_rate_limit":    "请求过多",
	},
}
