package service

// Static response templates. These are the product voice of the assistant;
// changing them changes observable behavior covered by tests.

const greetingResponse = `👋 **Welcome to TechMart!**

I'm your AI shopping assistant. I can help you find:
- 💻 **Laptops** (Gaming, Business, Ultrabooks)
- 📱 **Smartphones** (iPhone, Android, Budget options)
- 📊 **Product Comparisons**
- 💰 **Budget Recommendations**

What are you looking for today?`

const searchGuidanceResponse = `🔍 **What can I help you find?**

**Laptops:**
- Gaming laptops for high performance
- Business laptops for productivity
- Ultrabooks for portability

**Smartphones:**
- Latest iPhones and Android devices
- Budget-friendly options
- Camera-focused phones

Tell me your specific needs and budget!`

const searchFooter = "\n💡 **Need help deciding?** Tell me your budget and how you'll use it!"

const comparisonResponse = `🆚 **Product Comparisons:**

**Popular Laptop Comparisons:**
- **Dell XPS 13 vs MacBook Air M2**
  - XPS: More ports, 4K display, Windows flexibility
  - MacBook: Better battery, fanless design, macOS integration

- **Gaming vs Business Laptops**
  - Gaming: Dedicated GPU, high refresh displays, RGB
  - Business: Better battery, lighter weight, professional design

**Smartphone Comparisons:**
- **iPhone 15 Pro vs Galaxy S24 Ultra**
  - iPhone: Better video, longer updates, iOS ecosystem
  - Galaxy: S Pen, more customization, larger screen

**Tell me specific products you want compared!**`

const recommendationFooter = `💡 **For personalized recommendations, tell me:**
- Your budget range
- Primary use (work, gaming, photography, etc.)
- Preferred brand or features
- Any specific requirements`

const priceGuideResponse = `💰 **TechMart Price Guide:**

**💻 Laptops:**
- **Budget ($500-800):** Entry-level productivity laptops
- **Mid-range ($800-1300):** Quality laptops like Dell XPS 13, MacBook Air
- **Premium ($1300+):** High-end gaming laptops, MacBook Pro

**📱 Smartphones:**
- **Budget ($200-500):** Basic Android phones, older iPhones
- **Mid-range ($500-900):** Google Pixel 8 Pro, Galaxy S24
- **Premium ($900+):** iPhone 15 Pro, Galaxy S24 Ultra

**🔥 Current Deals:**
- MacBook Air M2: $1,199 (normally $1,299)
- Dell XPS 13: Starting at $1,299
- iPhone 15 Pro: $999 with trade-in deals

**What's your budget range? I'll find the best options!**`

const helpResponse = `🤖 **How I Can Help You:**

**🔍 Product Search:**
- "Find gaming laptops under $1500"
- "Show me iPhones with good cameras"

**🆚 Comparisons:**
- "Compare MacBook vs Dell XPS"
- "iPhone vs Samsung differences"

**💡 Recommendations:**
- "What's the best laptop for work?"
- "Recommend a phone for photography"

**💰 Budget Help:**
- "Laptops under $1000"
- "Best value smartphones"

**📷 Image Recognition:**
- Upload product photos for identification
- Get similar product suggestions

**I'm here to help with all your tech shopping needs!**`

const generalQuerySystemPrompt = "You are a helpful technology shopping assistant for TechMart. " +
	"Help users find and learn about laptops, smartphones, tablets, and accessories. " +
	"Be concise, helpful, and focus on product recommendations. " +
	"Always encourage users to ask about specific products or needs."

const generalQuerySuffix = "\n\n💡 **Ask me about specific products or your tech needs!**"

const generalQueryFallback = `I'd be happy to help you with that! As your TechMart AI assistant, I specialize in:

- Finding the perfect laptops and smartphones
- Comparing different products
- Providing budget recommendations
- Answering tech-related questions

What specific technology product or question can I help you with today?`

const generalQueryErrorFallback = "I'm here to help you find great technology products! " +
	"What are you looking for - laptops, smartphones, or something else?"

const processingApology = "I apologize, but I'm having trouble processing your request. Please try again."

const imageDemoResponse = `📷 **Image Analysis (Demo Mode):**

I can see your uploaded image! In full deployment with computer vision configured, I would:

✅ **Identify tech products** in your photos
✅ **Extract text** from product labels
✅ **Suggest similar products** from our catalog
✅ **Provide detailed specifications**

**Currently showing sample recommendations:**

**Laptops:**
- Dell XPS 13 - $1,299.99 ⭐ 4.6/5
- MacBook Air M2 - $1,199.99 ⭐ 4.8/5

**Smartphones:**
- iPhone 15 Pro - $999.99 ⭐ 4.7/5
- Galaxy S24 Ultra - $1,199.99 ⭐ 4.5/5

**What type of product are you looking for?**`

const voiceAvailableResponse = `🎤 **Voice Processing Available!**

I heard your voice input! With speech services configured, I can:

✅ **Convert speech to text** with high accuracy
✅ **Support multiple languages** and accents
✅ **Provide voice responses** back to you
✅ **Handle natural conversations** via voice

**Try saying things like:**
- "Find me a gaming laptop under $1500"
- "Compare iPhone and Samsung phones"
- "What's the best laptop for work?"

**What would you like to know about our tech products?**`

const voiceDemoResponse = `🎤 **Voice Input Received!**

Voice processing runs in demo mode until speech services are configured. With them enabled I respond with:

💬 **Speech-to-Text:** Convert your voice to text
🔊 **Text-to-Speech:** Respond with natural voice
🌍 **Multi-language:** Support for various languages
🎯 **Intent Recognition:** Understand what you're looking for

**You can ask me about:**
- Product recommendations
- Price comparisons
- Technical specifications
- Availability and deals

**What tech products interest you today?**`
