package i18n

// catalogs holds the storefront UI strings per locale. English is the
// source language; Bengali is the only translation shipped today.
var catalogs = map[string]map[string]string{
	"en": {
		"nav.home":           "Home",
		"nav.products":       "Products",
		"nav.categories":     "Categories",
		"nav.cart":           "Cart",
		"nav.wishlist":       "Wishlist",
		"nav.orders":         "My Orders",
		"nav.account":        "Account",
		"auth.login":         "Log in",
		"auth.logout":        "Log out",
		"auth.register":      "Create account",
		"auth.forgot":        "Forgot password?",
		"cart.empty":         "Your cart is empty",
		"cart.checkout":      "Checkout",
		"cart.subtotal":      "Subtotal",
		"cart.shipping":      "Shipping",
		"cart.total":         "Total",
		"cart.freeShipping":  "Free shipping on orders over $100",
		"product.addToCart":  "Add to cart",
		"product.outOfStock": "Out of stock",
		"product.featured":   "Featured",
		"order.placed":       "Order placed successfully",
		"order.track":        "Track order",
		"error.notFound":     "Page not found",
		"error.generic":      "Something went wrong",
	},
	"bn": {
		"nav.home":           "হোম",
		"nav.products":       "পণ্যসমূহ",
		"nav.categories":     "ক্যাটাগরি",
		"nav.cart":           "কার্ট",
		"nav.wishlist":       "উইশলিস্ট",
		"nav.orders":         "আমার অর্ডার",
		"nav.account":        "অ্যাকাউন্ট",
		"auth.login":         "লগ ইন",
		"auth.logout":        "লগ আউট",
		"auth.register":      "অ্যাকাউন্ট তৈরি করুন",
		"auth.forgot":        "পাসওয়ার্ড ভুলে গেছেন?",
		"cart.empty":         "আপনার কার্ট খালি",
		"cart.checkout":      "চেকআউট",
		"cart.subtotal":      "সাবটোটাল",
		"cart.shipping":      "ডেলিভারি চার্জ",
		"cart.total":         "মোট",
		"cart.freeShipping":  "$১০০ এর বেশি অর্ডারে ফ্রি ডেলিভারি",
		"product.addToCart":  "কার্টে যোগ করুন",
		"product.outOfStock": "স্টকে নেই",
		"product.featured":   "ফিচার্ড",
		"order.placed":       "অর্ডার সফলভাবে সম্পন্ন হয়েছে",
		"order.track":        "অর্ডার ট্র্যাক করুন",
		"error.notFound":     "পেজটি পাওয়া যায়নি",
		"error.generic":      "কিছু একটা ভুল হয়েছে",
	},
}
