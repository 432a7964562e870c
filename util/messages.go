package util

// Localized (Bengali) messages returned to callers. Auth messages stay in
// English to match the admin panel.
const (
	EMAIL_AND_PASSWORD_REQUIRED = "Email এবং password দিন"
	USER_ALREADY_EXISTS         = "User already exists"
	INVALID_CREDENTIALS         = "ভুল email বা password"
	REGISTRATION_SUCCESSFUL     = "Registration successful"
	LOGIN_SUCCESSFUL            = "Login successful"
	AUTHENTICATED               = "Authenticated"
	NO_TOKEN_PROVIDED           = "No token provided"
	INVALID_TOKEN               = "Invalid token"
	ACCESS_DENIED               = "Access denied"

	COMPLAINT_CREATED          = "অভিযোগ সফলভাবে জমা হয়েছে"
	COMPLAINT_FIELDS_REQUIRED  = "সব ফিল্ড পূরণ করুন"
	COMPLAINT_PHONE_REQUIRED   = "ফোন নম্বর দিন"
	COMPLAINT_STATUS_REQUIRED  = "Status দিন"
	COMPLAINTS_FOUND           = "অভিযোগ খুঁজে পাওয়া গেছে"
	COMPLAINTS_NONE_FOR_PHONE  = "এই নম্বরে কোনো অভিযোগ পাওয়া যায়নি"
	ALL_COMPLAINTS             = "সব অভিযোগ"
	COMPLAINT_FOUND            = "অভিযোগ পাওয়া গেছে"
	COMPLAINT_NOT_FOUND        = "অভিযোগ পাওয়া যায়নি"
	COMPLAINT_UPDATED          = "অভিযোগ আপডেট হয়েছে"
	COMPLAINT_DELETED          = "অভিযোগ মুছে ফেলা হয়েছে"
	COMPLAINT_STATS            = "পরিসংখ্যান"
	COMPLAINT_INVALID_TYPE     = "অবৈধ অভিযোগের ধরন"
	COMPLAINT_CREATE_FAILED    = "অভিযোগ জমা দিতে সমস্যা হয়েছে"
	COMPLAINT_DUPLICATE_TICKET = "টিকেট নম্বর তৈরি করা যায়নি, আবার চেষ্টা করুন"

	CAMPAIGN_CREATED         = "ক্যাম্পেইন সফলভাবে তৈরি হয়েছে"
	CAMPAIGN_FIELDS_REQUIRED = "টাইটেল, বিবরণ, ক্যাটাগরি, টাইপ এবং শুরুর তারিখ দিন"
	CAMPAIGN_TITLE_TOO_SHORT = "টাইটেল ৫ অক্ষরের বেশি হতে হবে"
	CAMPAIGN_TITLE_TOO_LONG  = "টাইটেল ২০০ অক্ষরের কম হতে হবে"
	CAMPAIGN_DESC_TOO_SHORT  = "বিবরণ ২০ অক্ষরের বেশি হতে হবে"
	ALL_CAMPAIGNS            = "সব ক্যাম্পেইন"
	NO_CAMPAIGNS             = "কোনো ক্যাম্পেইন নেই"
	ACTIVE_CAMPAIGNS         = "চলমান ক্যাম্পেইন"
	CAMPAIGN_FOUND           = "ক্যাম্পেইন পাওয়া গেছে"
	CAMPAIGN_NOT_FOUND       = "ক্যাম্পেইন পাওয়া যায়নি"
	CAMPAIGN_UPDATED         = "ক্যাম্পেইন আপডেট হয়েছে"
	CAMPAIGN_DELETED         = "ক্যাম্পেইন মুছে ফেলা হয়েছে"
	CAMPAIGN_STATS           = "ক্যাম্পেইন পরিসংখ্যান"
	CAMPAIGN_STATUS_REQUIRED = "স্ট্যাটাস দিন"
	CAMPAIGN_STATUS_INVALID  = "অবৈধ স্ট্যাটাস"
	CAMPAIGN_STATUS_UPDATED  = "স্ট্যাটাস আপডেট হয়েছে"
	CAMPAIGN_INVALID_TYPE    = "অবৈধ ক্যাম্পেইন টাইপ"
	CAMPAIGN_INVALID_CATEG   = "অবৈধ ক্যাটাগরি"
	CAMPAIGN_LIMIT_TOO_SMALL = "ভলান্টিয়ার লিমিট ১ বা তার বেশি হতে হবে"
	IMAGES_ADDED             = "ইমেজ যোগ করা হয়েছে"
	IMAGES_REQUIRED          = "কমপক্ষে একটি ইমেজ দিন"
	IMAGE_NOT_FOUND          = "ইমেজ পাওয়া যায়নি"
	IMAGE_REMOVED            = "ইমেজ মুছে ফেলা হয়েছে"
	IMAGE_TYPE_NOT_ALLOWED   = "শুধুমাত্র ইমেজ ফাইল (JPEG, JPG, PNG, WebP, GIF) আপলোড করা যাবে"
	TOO_MANY_IMAGES          = "সর্বোচ্চ ১০টি ইমেজ আপলোড করা যাবে"
	IMAGE_TOO_LARGE          = "ইমেজ সর্বোচ্চ ১০ মেগাবাইট হতে পারবে"

	NOTICE_CREATED         = "নোটিশ তৈরি হয়েছে"
	NOTICE_FIELDS_REQUIRED = "শিরোনাম, বিবরণ, তারিখ এবং লোকেশন দিন"
	ALL_NOTICES            = "সব নোটিশ"
	TODAY_NOTICES          = "আজকের নোটিশ"
	UPCOMING_NOTICES       = "আসন্ন নোটিশ"
	IMPORTANT_NOTICES      = "গুরুত্বপূর্ণ নোটিশ"
	NOTICE_FOUND           = "নোটিশ পাওয়া গেছে"
	NOTICE_NOT_FOUND       = "নোটিশ পাওয়া যায়নি"
	NOTICE_ID_REQUIRED     = "নোটিশ আইডি দিন"
	NOTICE_UPDATED         = "নোটিশ আপডেট হয়েছে"
	NOTICE_DELETED         = "নোটিশ ডিলিট হয়েছে"
	NOTICE_INVALID_TYPE    = "অবৈধ নোটিশ টাইপ"
	INVALID_DATE           = "অবৈধ তারিখ"
	INVALID_PRIORITY       = "প্রায়োরিটি ০ থেকে ১০ এর মধ্যে হতে হবে"
	INVALID_ID             = "Invalid id"
)
